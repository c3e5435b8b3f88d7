package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	appauth "stock-insight/internal/application/auth"
	"stock-insight/internal/application/marketdata"
	"stock-insight/internal/application/newsfeed"
	"stock-insight/internal/application/registry"
	"stock-insight/internal/application/resolver"
	"stock-insight/internal/application/sentiment"
	"stock-insight/internal/domain/news"
	"stock-insight/internal/infra/memory"
	authinfra "stock-insight/internal/infrastructure/auth"
	"stock-insight/internal/infrastructure/config"
)

const (
	errCodeBadRequest         = "BAD_REQUEST"
	errCodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	errCodeUnauthorized       = "AUTH_UNAUTHORIZED"
	errCodeForbidden          = "AUTH_FORBIDDEN"
	errCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	errCodeInternal           = "INTERNAL_ERROR"
)

// CorpusLoader 提供當下可用的新聞語料。
type CorpusLoader interface {
	Load(ctx context.Context) []news.RawRecord
}

// Server 封裝 HTTP 路由與依賴。
type Server struct {
	mux         *http.ServeMux
	registry    *registry.Provider
	corpus      CorpusLoader
	feed        *newsfeed.Service
	marketData  *marketdata.Service
	sentimentUC *sentiment.Service
	loginUC     *appauth.LoginUseCase
	tokenSvc    *authinfra.JWTIssuer
	tokenTTL    time.Duration
	db          *sql.DB
}

// NewServer 建立 API 伺服器並完成路由註冊。
func NewServer(
	cfg config.Config,
	provider *registry.Provider,
	corpus CorpusLoader,
	marketData *marketdata.Service,
	sentimentUC *sentiment.Service,
	db *sql.DB,
) *Server {
	store := memory.NewStore()
	store.SeedUsers()

	ttl := cfg.Auth.TokenTTL
	if ttl == 0 {
		ttl = 30 * time.Minute
	}
	tokenSvc := authinfra.NewJWTIssuer(cfg.Auth.Secret, ttl)
	loginUC := appauth.NewLoginUseCase(store, authinfra.BcryptHasher{}, tokenSvc)

	feed := newsfeed.NewService(
		resolverFor(provider),
		newsfeed.NewMatcher(snapshotLookup{provider}),
		newsfeed.NewNormalizer(),
		newsfeed.NewSynthesizer(),
	)

	s := &Server{
		mux:         http.NewServeMux(),
		registry:    provider,
		corpus:      corpus,
		feed:        feed,
		marketData:  marketData,
		sentimentUC: sentimentUC,
		loginUC:     loginUC,
		tokenSvc:    tokenSvc,
		tokenTTL:    ttl,
		db:          db,
	}
	s.registerRoutes()
	return s
}

// snapshotLookup 每次查詢都取目前生效的 registry 快照，
// reload 之後的請求自然讀到新表。
type snapshotLookup struct {
	provider *registry.Provider
}

func (l snapshotLookup) NameByTicker(ticker string) (string, bool) {
	return l.provider.Current().NameByTicker(ticker)
}

// resolverFor 建立跟著 provider 快照走的 resolver。
func resolverFor(provider *registry.Provider) newsfeed.CompanyResolver {
	return snapshotResolver{provider}
}

type snapshotResolver struct {
	provider *registry.Provider
}

func (r snapshotResolver) Resolve(rawToken string) string {
	return resolver.New(r.provider.Current()).Resolve(rawToken)
}

// Handler 回傳路由處理器，供 HTTP server 掛載。
func (s *Server) Handler() http.Handler {
	return withCORS(withRequestLog(s.mux))
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/api/ping", s.wrapGet(s.handlePing))
	s.mux.Handle("/api/health", s.wrapGet(s.handleHealth))
	s.mux.Handle("/api/auth/login", s.wrapPost(s.handleLogin))
	s.mux.Handle("/api/news/{company}", s.wrapGet(s.handleNews))
	s.mux.Handle("/api/stocks/{company}", s.wrapGet(s.handleStocks))
	s.mux.Handle("/api/companies", s.wrapGet(s.handleCompanies))
	s.mux.Handle("/api/analyze/sentiment", s.wrapPost(s.handleAnalyzeSentiment))
	s.mux.Handle("/api/admin/registry/reload", s.requireAuth(appauth.PermRegistryReload, s.wrapPost(s.handleRegistryReload)))
}

func (s *Server) wrapGet(next http.HandlerFunc) http.Handler {
	return methodGuard(http.MethodGet, next)
}

func (s *Server) wrapPost(next http.HandlerFunc) http.Handler {
	return methodGuard(http.MethodPost, next)
}

func methodGuard(method string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			writeError(w, http.StatusMethodNotAllowed, errCodeMethodNotAllowed, "method not allowed")
			return
		}
		next.ServeHTTP(w, r)
	})
}
