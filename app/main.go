package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	ntf "github.com/go-pkgz/notify"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"
	"github.com/robfig/cron/v3"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/empdir/app/backup"
	"github.com/umputun/empdir/app/enums"
	"github.com/umputun/empdir/app/notify"
	"github.com/umputun/empdir/app/store"
	"github.com/umputun/empdir/app/store/slot"
	"github.com/umputun/empdir/app/web"
)

var opts struct {
	Seed string `long:"seed" env:"EMPDIR_SEED" description:"seed file (json or yaml), embedded fixture if empty"`
	Dbg  bool   `long:"dbg" env:"EMPDIR_DEBUG" description:"debug mode"`

	Store struct {
		Driver string `long:"driver" env:"DRIVER" default:"sqlite" choice:"memory" choice:"file" choice:"sqlite" choice:"postgres" choice:"valkey" choice:"s3" description:"storage driver"`
		Path   string `long:"path" env:"PATH" default:"empdir.db" description:"sqlite db path or directory for file driver"`
		URL    string `long:"url" env:"URL" description:"postgres connection string or valkey address"`
		Key    string `long:"key" env:"KEY" default:"employees" description:"key of the employee collection"`

		S3 struct {
			Bucket    string `long:"bucket" env:"BUCKET" description:"bucket name"`
			Prefix    string `long:"prefix" env:"PREFIX" description:"object key prefix"`
			Region    string `long:"region" env:"REGION" description:"region"`
			Endpoint  string `long:"endpoint" env:"ENDPOINT" description:"custom endpoint, for minio and alike"`
			AccessKey string `long:"access-key" env:"ACCESS_KEY" description:"access key id"`
			SecretKey string `long:"secret-key" env:"SECRET_KEY" description:"secret access key"`
			PathStyle bool   `long:"path-style" env:"PATH_STYLE" description:"use path-style addressing"`
		} `group:"s3" namespace:"s3" env-namespace:"S3"`
	} `group:"store" namespace:"store" env-namespace:"EMPDIR_STORE"`

	Repeater struct {
		Attempts int           `long:"attempts" env:"ATTEMPTS" default:"3" description:"how many times to try a failed write"`
		Duration time.Duration `long:"duration" env:"DURATION" default:"100ms" description:"initial duration"`
		Factor   float64       `long:"factor" env:"FACTOR" default:"3" description:"backoff factor"`
		Jitter   bool          `long:"jitter" env:"JITTER" description:"jitter"`
	} `group:"repeater" namespace:"repeater" env-namespace:"EMPDIR_REPEATER"`

	Web struct {
		Address      string        `long:"address" env:"ADDRESS" default:":8080" description:"web server listen address"`
		BaseURL      string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy, e.g. /empdir"`
		Hostname     string        `long:"hostname" env:"HOSTNAME" description:"hostname to display in UI"`
		PasswordHash string        `long:"password-hash" env:"PASSWORD_HASH" description:"bcrypt hash of login password, auth disabled if empty"`
		LoginTTL     time.Duration `long:"login-ttl" env:"LOGIN_TTL" default:"24h" description:"login session TTL"`
		SessionTTL   time.Duration `long:"session-ttl" env:"SESSION_TTL" default:"1h" description:"idle TTL of form session"`
	} `group:"web" namespace:"web" env-namespace:"EMPDIR_WEB"`

	Notify struct {
		Kinds        []string      `long:"kinds" env:"KINDS" env-delim:"," description:"change kinds to notify about (added, updated, removed, seeded)"`
		Template     string        `long:"template" env:"TEMPLATE" description:"custom html template for change notifications"`
		HostName     string        `long:"host" env:"HOST" description:"host name reported in notifications"`
		Timeout      time.Duration `long:"timeout" env:"TIMEOUT" default:"10s" description:"delivery timeout"`
		SMTPHost     string        `long:"smtp-host" env:"SMTP_HOST" description:"SMTP host"`
		SMTPPort     int           `long:"smtp-port" env:"SMTP_PORT" default:"25" description:"SMTP port"`
		SMTPUsername string        `long:"smtp-username" env:"SMTP_USERNAME" description:"SMTP user name"`
		SMTPPassword string        `long:"smtp-password" env:"SMTP_PASSWORD" description:"SMTP password"`
		SMTPTLS      bool          `long:"smtp-tls" env:"SMTP_TLS" description:"enable SMTP TLS"`
		SMTPStartTLS bool          `long:"smtp-starttls" env:"SMTP_STARTTLS" description:"enable SMTP StartTLS"`
		FromEmail    string        `long:"from" env:"FROM" description:"from email, empdir@<host> if empty"`
		ToEmails     []string      `long:"to" env:"TO" env-delim:"," description:"to email(s)"`
		SlackToken   string        `long:"slack-token" env:"SLACK_TOKEN" description:"slack token"`
		SlackChans   []string      `long:"slack-channel" env:"SLACK_CHANNEL" env-delim:"," description:"slack channel(s)"`
		Webhooks     []string      `long:"webhook" env:"WEBHOOK" env-delim:"," description:"webhook URL(s)"`
	} `group:"notify" namespace:"notify" env-namespace:"EMPDIR_NOTIFY"`

	Backup struct {
		Location string `long:"location" env:"LOCATION" description:"directory for scheduled snapshots, disabled if empty"`
		Spec     string `long:"spec" env:"SPEC" default:"@daily" description:"snapshot schedule, standard cron spec"`
		Keep     int    `long:"keep" env:"KEEP" default:"7" description:"number of snapshots to keep, 0 keeps all"`
	} `group:"backup" namespace:"backup" env-namespace:"EMPDIR_BACKUP"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable logging"`
		Filename        string `long:"filename" env:"FILENAME" description:"file name to write logs to, stdout if empty"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"maximum size in megabytes of the log file before it gets rotated"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"0" description:"maximum number of days to retain old log files"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"7" description:"maximum number of old log files to retain"`
		EnabledCompress bool   `long:"enabled-compress" env:"ENABLED_COMPRESS" description:"determines if the rotated log files should be compressed using gzip"`
	} `group:"log" namespace:"log" env-namespace:"EMPDIR_LOG"`
}

var revision = "unknown"

func main() {
	fmt.Printf("empdir %s\n", revision)

	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	setupLogs()

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel) // handle SIGQUIT and SIGTERM

	if err := run(ctx); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	sl, err := slot.Open(ctx, slotConfig())
	if err != nil {
		return fmt.Errorf("failed to open %s slot: %w", opts.Store.Driver, err)
	}
	defer func() {
		if err := sl.Close(); err != nil {
			log.Printf("[WARN] failed to close %s slot: %v", sl.Driver(), err)
		}
	}()

	seed, err := store.LoadSeed(opts.Seed)
	if err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}

	rptr := repeater.New(&strategy.Backoff{Repeats: opts.Repeater.Attempts, Duration: opts.Repeater.Duration,
		Factor: opts.Repeater.Factor, Jitter: opts.Repeater.Jitter})

	st := store.New(sl, store.Opts{Key: opts.Store.Key, Seed: seed, Repeater: rptr})
	if err = st.Init(ctx, seed); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	log.Printf("[INFO] employee store ready, driver %s, %s", sl.Driver(), st)

	notifier, err := makeNotifier()
	if err != nil {
		return err
	}
	if notifier != nil {
		unsubscribe := st.Subscribe(notifier.OnChange)
		defer func() {
			unsubscribe()
			notifier.Close()
		}()
	}

	if opts.Backup.Location != "" {
		bk := &backup.Scheduler{Cron: cron.New(), Loader: st, Location: opts.Backup.Location,
			Spec: opts.Backup.Spec, Keep: opts.Backup.Keep}
		go func() {
			if err := bk.Do(ctx); err != nil {
				log.Printf("[WARN] backup scheduler failed, %v", err)
			}
		}()
	}

	srv, err := web.New(web.Config{
		Store:        st,
		BaseURL:      validateBaseURL(opts.Web.BaseURL),
		Hostname:     opts.Web.Hostname,
		Version:      revision,
		PasswordHash: opts.Web.PasswordHash,
		LoginTTL:     opts.Web.LoginTTL,
		SessionTTL:   opts.Web.SessionTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}
	return srv.Run(ctx, opts.Web.Address)
}

func slotConfig() slot.Config {
	return slot.Config{
		Driver: slot.Driver(opts.Store.Driver),
		Path:   opts.Store.Path,
		URL:    opts.Store.URL,
		S3: slot.S3Config{
			Bucket:          opts.Store.S3.Bucket,
			Prefix:          opts.Store.S3.Prefix,
			Region:          opts.Store.S3.Region,
			Endpoint:        opts.Store.S3.Endpoint,
			AccessKeyID:     opts.Store.S3.AccessKey,
			SecretAccessKey: opts.Store.S3.SecretKey,
			PathStyle:       opts.Store.S3.PathStyle,
		},
	}
}

// makeNotifier returns nil if no destinations configured
func makeNotifier() (*notify.Service, error) {
	kinds := make([]enums.ChangeKind, 0, len(opts.Notify.Kinds))
	for _, k := range opts.Notify.Kinds {
		kind, err := enums.ParseChangeKind(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("invalid notification kind: %w", err)
		}
		kinds = append(kinds, kind)
	}

	if opts.Notify.FromEmail == "" {
		opts.Notify.FromEmail = "empdir@" + makeHostName()
	}

	res := notify.NewService(
		notify.Params{
			ChangeTemplate: opts.Notify.Template,
			Kinds:          kinds,
			HostName:       makeHostName(),
			Timeout:        opts.Notify.Timeout,
		},
		notify.SendersParams{
			SMTPParams: ntf.SMTPParams{
				Host:        opts.Notify.SMTPHost,
				Port:        opts.Notify.SMTPPort,
				TLS:         opts.Notify.SMTPTLS,
				StartTLS:    opts.Notify.SMTPStartTLS,
				ContentType: "text/html",
				Username:    opts.Notify.SMTPUsername,
				Password:    opts.Notify.SMTPPassword,
				TimeOut:     opts.Notify.Timeout,
			},
			FromEmail:     opts.Notify.FromEmail,
			ToEmails:      opts.Notify.ToEmails,
			SlackToken:    opts.Notify.SlackToken,
			SlackChannels: opts.Notify.SlackChans,
			WebhookURLs:   opts.Notify.Webhooks,
		},
	)
	return res, nil
}

func makeHostName() string {
	if opts.Notify.HostName != "" {
		return opts.Notify.HostName
	}
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return host
}

// validateBaseURL normalizes base URL, no trailing slash and empty for root
func validateBaseURL(u string) string {
	u = strings.TrimSuffix(u, "/")
	if u != "" && !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	return u
}

// setupLogs configures lgr and returns the writer logs go to
func setupLogs() io.Writer {
	if !opts.Log.Enabled {
		log.Setup(log.Out(io.Discard), log.Err(io.Discard))
		return os.Stdout
	}

	var out io.Writer = os.Stdout
	if opts.Log.Filename != "" {
		out = &lumberjack.Logger{
			Filename:   opts.Log.Filename,
			MaxSize:    opts.Log.MaxSize,
			MaxAge:     opts.Log.MaxAge,
			MaxBackups: opts.Log.MaxBackups,
			Compress:   opts.Log.EnabledCompress,
		}
	}

	if opts.Dbg {
		log.Setup(log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.CallerFile, log.Out(out), log.Err(out))
		return out
	}
	log.Setup(log.Msec, log.Out(out), log.Err(out))
	return out
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			if sig == syscall.SIGQUIT { // catch SIGQUIT and print stack traces
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
				continue
			}
			cancel() // terminate on SIGTERM and SIGINT
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
