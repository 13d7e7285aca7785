// Package shared wires the dependencies common to the API server and the CLI.
package shared

import (
	"log"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Ayushpund/Acharya/core"
	"github.com/Ayushpund/Acharya/core/course"
	"github.com/Ayushpund/Acharya/core/dashboard"
	"github.com/Ayushpund/Acharya/core/recommend"
	"github.com/Ayushpund/Acharya/core/session"
	"github.com/Ayushpund/Acharya/core/student"
	llmsvc "github.com/Ayushpund/Acharya/services/llm"
	notifysvc "github.com/Ayushpund/Acharya/services/notify"
	"github.com/Ayushpund/Acharya/storage/database"
	inmemdb "github.com/Ayushpund/Acharya/storage/database/inmem"
)

const (
	DriverSQLite = "sqlite3"
	DriverMemory = "memory"

	ProviderOpenAI = "openai"
	ProviderDummy  = "dummy"
)

type Deps struct {
	Conf          *core.Config
	Logger        core.Logger
	DB            *sqlx.DB // nil unless the store is sqlite3
	Store         core.KVStore
	Validate      *validator.Validate
	Translator    ut.Translator
	Notifications *notifysvc.ConsoleService
	Dashboard     *dashboard.Service
}

// NewValidator returns a validator loaded with the core and student rules, with english messages.
func NewValidator() (*validator.Validate, ut.Translator) {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator)
	return validate, translator
}

// NewStore opens the session store selected by store.driver.
func NewStore(conf *core.Config) (core.KVStore, *sqlx.DB, error) {
	switch conf.Store.Driver {
	case DriverSQLite:
		db, err := database.OpenFromConfig(conf)
		if err != nil {
			return nil, nil, err
		}
		return database.NewKVStore(db), db, nil
	case DriverMemory:
		return inmemdb.NewKVStore(), nil, nil
	default:
		return nil, nil, errors.Errorf("unknown store driver %q", conf.Store.Driver)
	}
}

// NewGenerator returns the recommendation model selected by llm.provider.
func NewGenerator(conf *core.Config, catalog *course.Catalog) (recommend.Generator, error) {
	switch conf.LLM.Provider {
	case ProviderOpenAI:
		if conf.LLM.APIKey == "" {
			return nil, errors.New("llm.apiKey is required by the openai provider")
		}
		return llmsvc.NewOpenAIClient(conf), nil
	case ProviderDummy:
		return llmsvc.NewDummyGenerator(catalog), nil
	default:
		return nil, errors.Errorf("unknown llm provider %q", conf.LLM.Provider)
	}
}

// NewNotifier returns the console notifier, plus email delivery when sendgrid is configured.
func NewNotifier(conf *core.Config, logger core.Logger, console *notifysvc.ConsoleService) core.Notifier {
	if conf.Notify.SendgridAPIKey == "" || conf.Notify.ToEmail == "" {
		return console
	}
	return notifysvc.Multi(console, notifysvc.NewSendgridService(conf, logger))
}

// Setup builds the dashboard service and everything it depends on.
// std receives the console notifications; nil keeps them queued only.
func Setup(conf *core.Config, logger core.Logger, std *log.Logger) (*Deps, error) {
	store, db, err := NewStore(conf)
	if err != nil {
		return nil, errors.Wrap(err, "setting up store")
	}

	catalog := course.DefaultCatalog()
	gen, err := NewGenerator(conf, catalog)
	if err != nil {
		_ = store.Close()
		return nil, errors.Wrap(err, "setting up recommendation model")
	}

	console := notifysvc.NewConsoleServiceMock()
	if std != nil {
		console = notifysvc.NewConsoleService(std)
	}
	validate, translator := NewValidator()

	d := &Deps{
		Conf:          conf,
		Logger:        logger,
		DB:            db,
		Store:         store,
		Validate:      validate,
		Translator:    translator,
		Notifications: console,
	}
	d.Dashboard = dashboard.NewService(dashboard.Deps{
		Session:     session.New(store, logger),
		Catalog:     catalog,
		Recommender: recommend.NewRequester(gen, validate, logger),
		Notifier:    NewNotifier(conf, logger, console),
		Validate:    validate,
		Logger:      logger,
		VideoDelay:  conf.Progress.VideoCompletionDelay,
	})
	return d, nil
}

// Close stops pending timers and closes the store.
func (d *Deps) Close() error {
	d.Dashboard.Close()
	return d.Store.Close()
}
