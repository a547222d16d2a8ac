package daemon

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/matheus3301/chatsync/internal/api"
	"github.com/matheus3301/chatsync/internal/bus"
	"github.com/matheus3301/chatsync/internal/chatlist"
	"github.com/matheus3301/chatsync/internal/config"
	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/docstore/mongodoc"
	"github.com/matheus3301/chatsync/internal/docstore/sqldoc"
	"github.com/matheus3301/chatsync/internal/fanout"
	"github.com/matheus3301/chatsync/internal/graph"
	"github.com/matheus3301/chatsync/internal/identity"
	"github.com/matheus3301/chatsync/internal/lock"
	"github.com/matheus3301/chatsync/internal/logging"
	"github.com/matheus3301/chatsync/internal/media"
	"github.com/matheus3301/chatsync/internal/messagelog"
	"github.com/matheus3301/chatsync/internal/model"
	"github.com/matheus3301/chatsync/internal/outbox"
	"github.com/matheus3301/chatsync/internal/profile"
	"github.com/matheus3301/chatsync/internal/projection"
	"github.com/matheus3301/chatsync/internal/status"
	"github.com/matheus3301/chatsync/internal/store"
	intsync "github.com/matheus3301/chatsync/internal/sync"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved profile passed to the fx module.
type Params struct {
	ProfileName string
	SocketPath  string          // optional override for testing; empty = use default
	Config      *config.Profile // optional; loaded from the profile dir when nil
}

// followInterval is how often the SQL change log is polled.
const followInterval = 500 * time.Millisecond

// changeFeed follows writes made by other processes sharing the document
// store. It is nil when the backend cannot report them.
type changeFeed func(ctx context.Context, notify func(paths ...string)) error

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideStateMachine,
			provideLock,
			provideStore,
			provideBackend,
			provideDocs,
			provideIdentity,
			provideMessageLog,
			provideProjections,
			provideWriter,
			provideGraph,
			provideWatcher,
			provideUploader,
			provideSyncEngine,
			provideRecoverer,
			provideSessionService,
			provideChatService,
			provideMessageService,
			provideFriendService,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Profile, error) {
	cfg := p.Config
	if cfg == nil {
		if err := profile.EnsureDir(p.ProfileName); err != nil {
			return nil, err
		}
		loaded, err := config.LoadProfile(profile.Dir(p.ProfileName))
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if !model.ValidUserID(cfg.UserID) {
		return nil, fmt.Errorf("profile %q: user_id %q is not a valid user id", p.ProfileName, cfg.UserID)
	}
	return cfg, nil
}

func provideLogger(p Params, cfg *config.Profile) (*zap.Logger, error) {
	return logging.New(profile.LogPath(p.ProfileName), p.ProfileName, cfg.Log.Level)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideStateMachine(b *bus.Bus) *status.Machine {
	return status.NewMachine(b)
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := profile.EnsureDir(p.ProfileName); err != nil {
		return nil, err
	}
	logger.Info("acquiring profile lock", zap.String("profile", p.ProfileName))
	l, err := lock.Acquire(profile.Dir(p.ProfileName), p.ProfileName)
	if err != nil {
		var held *lock.HeldError
		if errors.As(err, &held) {
			logger.Error("profile already in use", zap.Int("pid", held.Owner.PID))
		}
		return nil, err
	}
	logger.Info("profile lock acquired")
	return l, nil
}

// provideStore depends on the lock so no second daemon touches state.db.
func provideStore(p Params, _ *lock.Lock, logger *zap.Logger) (*store.DB, error) {
	dbPath := profile.StatePath(p.ProfileName)
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("state store initialized", zap.String("path", dbPath))
	return db, nil
}

func provideBackend(cfg *config.Profile, _ *lock.Lock, logger *zap.Logger) (docstore.Backend, changeFeed, error) {
	sc := cfg.Store
	switch sc.Backend {
	case config.BackendSQLite, config.BackendPostgres:
		var (
			b   *sqldoc.Backend
			err error
		)
		if sc.Backend == config.BackendSQLite {
			b, err = sqldoc.OpenSQLite(sc.Path)
		} else {
			b, err = sqldoc.OpenPostgres(sc.DSN)
		}
		if err != nil {
			return nil, nil, err
		}
		result, err := b.Migrate()
		if err != nil {
			_ = b.Close()
			return nil, nil, err
		}
		logger.Info("document store ready",
			zap.String("backend", sc.Backend),
			zap.Uint("version", result.Version),
			zap.Bool("migrated", result.Changed))
		feed := func(ctx context.Context, notify func(paths ...string)) error {
			return b.Follow(ctx, followInterval, notify)
		}
		return b, feed, nil

	case config.BackendMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		b, err := mongodoc.Open(ctx, sc.URI, sc.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := b.EnsureIndexes(ctx); err != nil {
			_ = b.Close()
			return nil, nil, err
		}
		logger.Info("document store ready", zap.String("backend", sc.Backend), zap.String("database", sc.Database))
		return b, b.Follow, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", sc.Backend)
}

func provideDocs(backend docstore.Backend, b *bus.Bus, logger *zap.Logger) *docstore.Engine {
	return docstore.New(backend, b, logger)
}

func provideIdentity(docs *docstore.Engine, logger *zap.Logger) *identity.Store {
	return identity.New(docs, logger)
}

func provideMessageLog(docs *docstore.Engine, logger *zap.Logger) *messagelog.Log {
	return messagelog.New(docs, logger)
}

func provideProjections(docs *docstore.Engine) *projection.Store {
	return projection.New(docs)
}

func provideWriter(docs *docstore.Engine, logger *zap.Logger) *fanout.Writer {
	return fanout.NewWriter(docs, logger)
}

func provideGraph(docs *docstore.Engine, ids *identity.Store, w *fanout.Writer, logger *zap.Logger) *graph.Service {
	return graph.New(docs, ids, w, logger)
}

func provideWatcher(ids *identity.Store, rows *projection.Store, logger *zap.Logger) *chatlist.Watcher {
	return chatlist.NewWatcher(ids, rows, logger)
}

func provideUploader(cfg *config.Profile, logger *zap.Logger) (*media.DirUploader, error) {
	return media.NewDirUploader(cfg.Media.Dir, logger)
}

func provideSyncEngine(
	cfg *config.Profile,
	docs *docstore.Engine,
	ids *identity.Store,
	log *messagelog.Log,
	w *fanout.Writer,
	rows *projection.Store,
	db *store.DB,
	up *media.DirUploader,
	b *bus.Bus,
	m *status.Machine,
	logger *zap.Logger,
) *intsync.Engine {
	return intsync.NewEngine(intsync.Params{
		Docs:     docs,
		Identity: ids,
		Log:      log,
		Writer:   w,
		Rows:     rows,
		Local:    db,
		Uploader: up,
		Bus:      b,
		Health:   m,
		Logger:   logger,
		Config: intsync.Config{
			FanoutTimeout:    cfg.Sync.FanoutTimeout.Duration,
			ReadMarkInterval: cfg.Sync.ReadMarkInterval.Duration,
			MessageWindow:    cfg.Sync.MessageWindow,
		},
	})
}

// provideRecoverer treats a send as stale once two fan-out timeouts have
// passed, which a live send can never exceed.
func provideRecoverer(cfg *config.Profile, db *store.DB, log *messagelog.Log, b *bus.Bus, logger *zap.Logger) *outbox.Recoverer {
	return outbox.NewRecoverer(db, log, b, logger, 2*cfg.Sync.FanoutTimeout.Duration, cfg.Sync.RecoverInterval.Duration)
}

func provideSessionService(p Params, cfg *config.Profile, m *status.Machine, engine *intsync.Engine, ids *identity.Store, b *bus.Bus) *api.SessionService {
	return api.NewSessionService(p.ProfileName, cfg.UserID, m, engine, ids, b)
}

func provideChatService(cfg *config.Profile, engine *intsync.Engine, w *chatlist.Watcher, logger *zap.Logger) *api.ChatService {
	return api.NewChatService(cfg.UserID, engine, w, logger)
}

func provideMessageService(cfg *config.Profile, engine *intsync.Engine, logger *zap.Logger) *api.MessageService {
	return api.NewMessageService(cfg.UserID, engine, logger)
}

func provideFriendService(cfg *config.Profile, g *graph.Service) *api.FriendService {
	return api.NewFriendService(cfg.UserID, g)
}

type lifecycleDeps struct {
	fx.In

	Config    *config.Profile
	Server    *Server
	Lock      *lock.Lock
	State     *store.DB
	Docs      *docstore.Engine
	Feed      changeFeed
	Identity  *identity.Store
	Graph     *graph.Service
	Bus       *bus.Bus
	Engine    *intsync.Engine
	Recoverer *outbox.Recoverer
	Machine   *status.Machine
	Logger    *zap.Logger
}

func registerLifecycle(lc fx.Lifecycle, d lifecycleDeps) {
	var (
		stopFollow context.CancelFunc
		followDone chan struct{}
		requests   *docstore.Subscription
	)
	logger := d.Logger
	uid := d.Config.UserID

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = d.Machine.Transition(status.Connecting)

			u, err := d.Identity.Register(ctx, model.User{
				ID:          uid,
				DisplayName: d.Config.DisplayName,
				AvatarURL:   d.Config.AvatarURL,
			})
			if err != nil {
				_ = d.Machine.Transition(status.Error)
				return fmt.Errorf("register profile: %w", err)
			}
			logger.Info("profile registered", zap.String("user_id", u.ID), zap.Int("friends", u.FriendCount))

			if err := d.Engine.SetPresence(ctx, uid, true); err != nil {
				logger.Warn("set presence failed", zap.Error(err))
			}

			d.Recoverer.Start(context.Background())
			requests = d.Graph.WatchIncoming(uid, func(reqs []*model.FriendRequest, err error) {
				if err != nil {
					d.Machine.Degrade(err)
					return
				}
				d.Machine.Recover()
				d.Bus.Emit(bus.KindFriendRequests, incomingPayload(reqs))
			})

			if d.Config.Store.WatchExternal && d.Feed != nil {
				var followCtx context.Context
				followCtx, stopFollow = context.WithCancel(context.Background())
				followDone = make(chan struct{})
				go func() {
					defer close(followDone)
					if err := d.Feed(followCtx, d.Docs.Notify); err != nil {
						logger.Error("external change feed stopped", zap.Error(err))
						d.Machine.Degrade(err)
					}
				}()
				logger.Info("following external writes")
			}

			go func() {
				if err := d.Server.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()

			_ = d.Machine.Transition(status.Ready)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := d.Engine.SetPresence(ctx, uid, false); err != nil {
				logger.Warn("clear presence failed", zap.Error(err))
			}
			requests.Stop()
			if stopFollow != nil {
				stopFollow()
				<-followDone
			}
			d.Recoverer.Stop()
			d.Server.Stop(ctx)
			d.Engine.Close()
			if err := d.Docs.Close(); err != nil {
				logger.Warn("error closing document store", zap.Error(err))
			}
			if err := d.State.Close(); err != nil {
				logger.Warn("error closing state store", zap.Error(err))
			}
			if err := d.Lock.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			return nil
		},
	})
}

func incomingPayload(reqs []*model.FriendRequest) map[string]string {
	p := map[string]string{"pending": strconv.Itoa(len(reqs))}
	var newest *model.FriendRequest
	for _, r := range reqs {
		if newest == nil || r.CreatedAt > newest.CreatedAt {
			newest = r
		}
	}
	if newest != nil {
		p["request_id"] = newest.ID
		p["sender_id"] = newest.SenderID
	}
	return p
}
