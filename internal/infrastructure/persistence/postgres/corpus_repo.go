package postgres

import (
	"context"
	"database/sql"

	"stock-insight/internal/domain/news"
)

// CorpusRepo 提供新聞語料的 Postgres 存取，作為 JSON 檔之外的次要來源。
type CorpusRepo struct {
	db *sql.DB
}

// NewCorpusRepo 建立語料 repository。
func NewCorpusRepo(db *sql.DB) *CorpusRepo {
	return &CorpusRepo{db: db}
}

// AllRecords 取出全部語料，維持寫入順序（id 遞增）。
// 欄位皆可為 NULL，對應原始語料的欄位缺漏。
func (r *CorpusRepo) AllRecords(ctx context.Context) ([]news.RawRecord, error) {
	const q = `
SELECT company, published_date, title, content, body_text, impact_pct
FROM news_records
ORDER BY id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []news.RawRecord
	for rows.Next() {
		var (
			company, date, title, content, text sql.NullString
			impact                              sql.NullInt64
		)
		if err := rows.Scan(&company, &date, &title, &content, &text, &impact); err != nil {
			return nil, err
		}
		rec := news.RawRecord{
			Company: company.String,
			Date:    date.String,
			Title:   title.String,
			Content: content.String,
			Text:    text.String,
		}
		if impact.Valid {
			v := int(impact.Int64)
			rec.ImpactPct = &v
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// InsertRecord 寫入單筆語料，空欄位以 NULL 儲存。
func (r *CorpusRepo) InsertRecord(ctx context.Context, rec news.RawRecord) error {
	const q = `
INSERT INTO news_records (company, published_date, title, content, body_text, impact_pct)
VALUES ($1, $2, $3, $4, $5, $6);
`
	_, err := r.db.ExecContext(ctx, q,
		nullString(rec.Company),
		nullString(rec.Date),
		nullString(rec.Title),
		nullString(rec.Content),
		nullString(rec.Text),
		nullImpact(rec.ImpactPct),
	)
	return err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullImpact(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
