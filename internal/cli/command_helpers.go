package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/afdtools/afd-catalog/internal/logger"
	"github.com/afdtools/afd-catalog/pkg/catalog"
	"github.com/afdtools/afd-catalog/pkg/files"
	"github.com/afdtools/afd-catalog/pkg/models"
	"github.com/afdtools/afd-catalog/pkg/search"
)

// Names of the persistent flags shared by all commands
const (
	FlagCatalog   = "catalog"
	FlagCodelists = "codelists"
	FlagConfig    = "config"
	FlagOutput    = "output"
	FlagQuiet     = "quiet"
	FlagNoColor   = "no-color"
	FlagVerbose   = "verbose"
	FlagYes       = "yes"
)

// CommandContext resolves settings and loads the catalog for a command
type CommandContext struct {
	SettingsPath string
	Settings     *models.Settings
	Logger       *log.Logger

	catalogPath   string
	codelistsPath string
	outputFormat  string

	store  *catalog.Store
	engine *search.Engine
}

// NewCommandContext reads the settings file and applies the persistent
// flags of cmd on top of it. Flags that were not set keep the configured
// value.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	flags := cmd.Flags()
	configPath, _ := flags.GetString(FlagConfig)

	settings, err := files.ReadSettings(configPath)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		configPath = files.SettingsFile
	}

	c := &CommandContext{
		SettingsPath:  configPath,
		Settings:      settings,
		catalogPath:   files.ResolvePath(configPath, settings.Data.Catalog),
		codelistsPath: files.ResolvePath(configPath, settings.Data.Codelists),
		outputFormat:  settings.Output.Format,
	}

	if flags.Changed(FlagCatalog) {
		c.catalogPath, _ = flags.GetString(FlagCatalog)
	}
	if flags.Changed(FlagCodelists) {
		c.codelistsPath, _ = flags.GetString(FlagCodelists)
	}
	if flags.Changed(FlagOutput) {
		c.outputFormat, _ = flags.GetString(FlagOutput)
	}
	if err := ValidateOutputFormat(c.outputFormat); err != nil {
		return nil, err
	}

	verbose, _ := flags.GetBool(FlagVerbose)
	quietFlag, _ := flags.GetBool(FlagQuiet)
	logger.SetLevel(settings.LogLevel, verbose, quietFlag)
	c.Logger = logger.New("afd")

	return c, nil
}

// CatalogPath returns the resolved catalog source path
func (c *CommandContext) CatalogPath() string {
	return c.catalogPath
}

// CodelistsPath returns the resolved codelist source path
func (c *CommandContext) CodelistsPath() string {
	return c.codelistsPath
}

// OutputFormat returns the effective output format
func (c *CommandContext) OutputFormat() string {
	return c.outputFormat
}

// Store loads the catalog on first use
func (c *CommandContext) Store() (*catalog.Store, error) {
	if c.store != nil {
		return c.store, nil
	}

	if err := ValidateFilePath(c.catalogPath); err != nil {
		return nil, fmt.Errorf("catalog not found: %w (set data.catalog in %s or use --catalog)", err, files.SettingsFile)
	}

	store, err := files.LoadStore(c.catalogPath, c.codelistsPath, c.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	c.store = store
	return store, nil
}

// Engine returns a search engine over the loaded store
func (c *CommandContext) Engine() (*search.Engine, error) {
	if c.engine != nil {
		return c.engine, nil
	}

	store, err := c.Store()
	if err != nil {
		return nil, err
	}

	c.engine = search.NewEngine(store, search.WithLocale(search.ParseLocale(c.Settings.Search.Locale)))
	return c.engine, nil
}

// QueryFlags are the filter flags shared by the query commands
type QueryFlags struct {
	Mode     string
	Type     string
	Datatype string
	Entity   string
}

// Register adds the filter flags to cmd
func (f *QueryFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Mode, "mode", "m", "", "Search mode: normal, wildcard, or regex (default from config)")
	cmd.Flags().StringVarP(&f.Type, "type", "t", models.All, "Row type: all, entity, or attribute")
	cmd.Flags().StringVarP(&f.Datatype, "datatype", "d", models.All, "Only rows with this datatype")
	cmd.Flags().StringVarP(&f.Entity, "entity", "e", models.All, "Only rows of this entity")
}

// BuildQuery combines the search term with the filter flags. The search
// mode falls back to the configured default.
func (c *CommandContext) BuildQuery(term string, f QueryFlags) (models.Query, error) {
	modeName := f.Mode
	if modeName == "" {
		modeName = c.Settings.Search.Mode
	}
	mode, err := models.ParseSearchMode(modeName)
	if err != nil {
		return models.Query{}, err
	}

	typ, err := models.ParseTypeFilter(f.Type)
	if err != nil {
		return models.Query{}, err
	}

	q := models.NewQuery()
	q.SearchTerm = strings.TrimSpace(term)
	q.Mode = mode
	q.Type = typ
	if f.Datatype != "" {
		q.Datatype = f.Datatype
	}
	if f.Entity != "" {
		q.Entity = f.Entity
	}
	return q, nil
}
