package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Abraxas-365/hirematch/internal/config"
	"github.com/Abraxas-365/hirematch/internal/docreader"
	"github.com/Abraxas-365/hirematch/internal/metrics"
	"github.com/Abraxas-365/hirematch/pkg/fsx"
	"github.com/Abraxas-365/hirematch/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/hirematch/pkg/fsx/fsxs3"
	"github.com/Abraxas-365/hirematch/pkg/iam/auth"
	"github.com/Abraxas-365/hirematch/pkg/logx"
	"github.com/Abraxas-365/hirematch/recruitment/application/applicationapi"
	"github.com/Abraxas-365/hirematch/recruitment/application/applicationinfra"
	"github.com/Abraxas-365/hirematch/recruitment/application/applicationsrv"
	"github.com/Abraxas-365/hirematch/recruitment/candidate/candidateapi"
	"github.com/Abraxas-365/hirematch/recruitment/candidate/candidateinfra"
	"github.com/Abraxas-365/hirematch/recruitment/candidate/candidatesrv"
	"github.com/Abraxas-365/hirematch/recruitment/job/jobapi"
	"github.com/Abraxas-365/hirematch/recruitment/job/jobinfra"
	"github.com/Abraxas-365/hirematch/recruitment/job/jobsrv"
	"github.com/Abraxas-365/hirematch/recruitment/recommendation/recommendationapi"
	"github.com/Abraxas-365/hirematch/recruitment/recommendation/recommendationsrv"
	"github.com/Abraxas-365/hirematch/recruitment/resume"
	"github.com/Abraxas-365/hirematch/recruitment/resume/resumeapi"
	"github.com/Abraxas-365/hirematch/recruitment/resume/resumeinfra"
	"github.com/Abraxas-365/hirematch/recruitment/resume/resumeparser"
	"github.com/Abraxas-365/hirematch/recruitment/resume/resumesrv"
	"github.com/Abraxas-365/hirematch/recruitment/resume/worker"
	"github.com/Abraxas-365/hirematch/recruitment/skill"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const devJWTSecret = "hirematch-dev-secret-change-me"

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	Metrics    *metrics.Metrics

	// Auth
	Tokens         *auth.JWTService
	AuthMiddleware *auth.Middleware

	// Services
	ResumeService         *resumesrv.Service
	JobService            *jobsrv.JobService
	CandidateService      *candidatesrv.CandidateService
	RecommendationService *recommendationsrv.Service
	ApplicationService    *applicationsrv.ApplicationService
	Worker                *worker.ResumeWorker

	// API Handlers
	ResumeHandlers         *resumeapi.ResumeHandlers
	JobHandlers            *jobapi.Handlers
	CandidateHandlers      *candidateapi.Handlers
	RecommendationHandlers *recommendationapi.Handlers
	ApplicationHandlers    *applicationapi.Handlers
}

// NewContainer connects the infrastructure and wires every service
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg, Metrics: metrics.New()}
	if err := c.initInfrastructure(ctx); err != nil {
		c.Close()
		return nil, err
	}
	if err := c.initServices(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// Close releases database and redis connections
func (c *Container) Close() {
	if c.DB != nil {
		_ = c.DB.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	// 1. Database Connection
	db, err := sqlx.ConnectContext(ctx, "postgres", c.Config.Database.DSN)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	db.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
	db.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
	db.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
	if _, err := c.Redis.Ping(ctx).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. File storage
	files, err := newFileSystem(ctx, c.Config.Storage)
	if err != nil {
		return err
	}
	c.FileSystem = files

	// 4. Auth
	c.Tokens = newTokenService(c.Config.Auth)
	c.AuthMiddleware = auth.NewMiddleware(c.Tokens)
	return nil
}

func (c *Container) initServices() error {
	// --- Repositories ---
	resumeRepo := resumeinfra.NewPostgresResumeRepository(c.DB)
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	candidateRepo := candidateinfra.NewPostgresCandidateRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)

	queue := resumeinfra.NewRedisQueue(c.Redis, c.Config.Worker.Queue)
	tasks := resumeinfra.NewRedisTaskStore(c.Redis, c.Config.Worker.TaskPrefix, c.Config.Worker.TaskTTL)

	// --- Resume parsing ---
	parser, err := newParser(c.Config.Parser, c.FileSystem)
	if err != nil {
		return err
	}
	c.ResumeService = resumesrv.NewService(resumeRepo, parser, c.FileSystem, tasks, queue, c.Metrics)
	c.Worker = worker.NewResumeWorker(c.ResumeService, queue, c.Config.Worker.Count).
		WithTaskTimeout(c.Config.Worker.TaskTimeout)

	// --- Jobs & candidates ---
	c.JobService = jobsrv.NewJobService(jobRepo)
	c.CandidateService = candidatesrv.NewCandidateService(candidateRepo)

	// --- Recommendations ---
	engine, err := recommendationsrv.NewEngine(c.Config.Recommendation.Weights())
	if err != nil {
		return err
	}
	c.RecommendationService = recommendationsrv.NewService(
		resumeRepo,
		c.CandidateService,
		c.JobService,
		recommendationsrv.NewRanker(engine),
		recommendationsrv.NewSimilarityFinder(),
		c.Metrics,
	)

	// --- Applications & saved jobs ---
	c.ApplicationService = applicationsrv.NewApplicationService(
		applicationRepo,
		applicationRepo.SavedJobs(),
		c.JobService,
		c.CandidateService,
		resumeRepo,
		engine,
	)

	// --- Handlers ---
	c.ResumeHandlers = resumeapi.NewResumeHandlers(c.ResumeService, c.FileSystem, c.Config.Parser.MaxFileSize)
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.CandidateHandlers = candidateapi.NewHandlers(c.CandidateService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.RecommendationHandlers = recommendationapi.NewHandlers(
		c.RecommendationService,
		c.Config.Recommendation.DefaultLimit,
		c.Config.Recommendation.MaxLimit,
	)
	return nil
}

func newFileSystem(ctx context.Context, cfg config.StorageConfig) (fsx.FileSystem, error) {
	switch cfg.Driver {
	case config.StorageS3:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3.Region))
		if err != nil {
			return nil, fmt.Errorf("load AWS config: %w", err)
		}
		logx.Infof("Resume storage: s3://%s/%s", cfg.S3.Bucket, cfg.S3.Prefix)
		return fsxs3.NewS3FileSystem(s3.NewFromConfig(awsCfg), cfg.S3.Bucket, cfg.S3.Prefix), nil
	default:
		files, err := fsxlocal.NewLocalFileSystem(cfg.Local.Root)
		if err != nil {
			return nil, fmt.Errorf("open local storage %s: %w", cfg.Local.Root, err)
		}
		logx.Infof("Resume storage: %s", cfg.Local.Root)
		return files, nil
	}
}

// newParser builds the configured resume parser reading from files
func newParser(cfg config.ParserConfig, files fsx.FileReader) (resume.Parser, error) {
	extractor := docreader.NewExtractor(files, docreader.WithPDFBackend(cfg.PDFBackend))
	matcher := skill.NewMatcher(skill.LoadTaxonomyOrEmpty(cfg.TaxonomyPath))
	return resumeparser.New(resumeparser.Mode(cfg.Mode), extractor, matcher)
}

func newTokenService(cfg config.AuthConfig) *auth.JWTService {
	secret := cfg.JWTSecret
	if secret == "" {
		logx.Warn("auth.jwt_secret is not set, using development secret (unsafe for production)")
		secret = devJWTSecret
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return auth.NewJWTService(secret, cfg.Issuer, ttl)
}
