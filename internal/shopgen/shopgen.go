// Package shopgen clones the site into a new directory configured for another shop.
package shopgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/barbersite/barbersite/internal/config"
	"github.com/barbersite/barbersite/internal/db/models"
	"github.com/barbersite/barbersite/internal/site/settings"
)

const (
	// PlaceholderPhone is written until the shop sets its phone number.
	PlaceholderPhone = "(XXX) XXX-XXXX"

	// PlaceholderEmail is written until the shop sets its email.
	PlaceholderEmail = "info@example.com"

	// GitIgnore is copied from the source when the target has none.
	GitIgnore = ".gitignore"
)

// DefaultSkip lists the runtime state of a site that is never copied to a new shop:
// the backup directory and the sqlite database, relative to the source.
var DefaultSkip = []string{"data/backups", "data/barbersite.db"} //nolint:gochecknoglobals

// sqlite keeps these next to the database file.
var sqliteSidecars = []string{"-wal", "-shm", "-journal"} //nolint:gochecknoglobals

var (
	titleRe       = regexp.MustCompile(`(?m)^([ \t]*Title[ \t]*=[ \t]*)"(?:[^"\\\n]|\\.)*"`)
	descriptionRe = regexp.MustCompile(`(?m)^([ \t]*Description[ \t]*=[ \t]*)"(?:[^"\\\n]|\\.)*"`)
)

// Options describes the shop to create.
type Options struct {
	Name  string
	City  string
	State string

	// Source is the tree to copy. Defaults to the working directory.
	Source string

	// Output is the target directory. Defaults to <Source>/../<lower(City)>-barbers.
	Output string

	// Git initialises a repository with an initial commit in the target.
	Git bool

	// Skip lists source relative paths left out of the copy. Nil means DefaultSkip.
	Skip []string
}

// Validate checks the required options.
func (o Options) Validate() error {
	if strings.TrimSpace(o.Name) == "" || strings.TrimSpace(o.City) == "" || strings.TrimSpace(o.State) == "" {
		return ErrMissingArgument
	}

	return nil
}

// Title returns the page title of the shop.
func (o Options) Title() string {
	return fmt.Sprintf("%s - Premium Barbershop in %s, %s", o.Name, o.City, o.State)
}

// Description returns the page description of the shop.
func (o Options) Description() string {
	return fmt.Sprintf(
		"Premier barbershop in %s, %s offering expert haircuts, beard trims, and grooming services.",
		o.City, o.State,
	)
}

// FolderName returns the default directory name of the shop.
func (o Options) FolderName() string {
	return strings.ToLower(o.City) + "-barbers"
}

// Generator creates shop sites on Fs.
type Generator struct {
	Fs  afero.Fs
	Now func() time.Time

	// RunGit runs a git command in dir. Defaults to the git binary.
	RunGit func(dir string, args ...string) error
}

// New returns a generator on the OS filesystem.
func New() *Generator {
	return &Generator{
		Fs:     afero.NewOsFs(),
		Now:    time.Now,
		RunGit: runGit,
	}
}

// Create clones opts.Source into the target directory and configures it for the shop.
// It returns the target directory. Nothing is rolled back on failure.
func (g *Generator) Create(opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	source := opts.Source
	if source == "" {
		source = "."
	}

	source, err := filepath.Abs(source)
	if err != nil {
		return "", fmt.Errorf("source directory: %w", err)
	}

	target := opts.Output
	if target == "" {
		target = filepath.Join(source, "..", opts.FolderName())
	}

	if target, err = filepath.Abs(target); err != nil {
		return "", fmt.Errorf("target directory: %w", err)
	}

	if target == source || strings.HasPrefix(target, source+string(filepath.Separator)) {
		return "", ErrTargetInsideSource
	}

	log.Info().
		Str("shop", opts.Name).
		Str("city", opts.City).
		Str("state", opts.State).
		Str("target", target).
		Msg("creating new barbershop site")

	steps := []struct {
		name string
		run  func() error
	}{
		{"copy template files", func() error { return g.copyTree(source, target, opts.skip()) }},
		{"write " + config.EnvFile, func() error { return g.writeEnv(target, opts) }},
		{"write settings", func() error { return g.writeSettings(target, opts) }},
		{"patch page metadata", func() error { return g.patchMainConfig(target, opts) }},
		{"copy " + GitIgnore, func() error { return g.copyGitIgnore(source, target) }},
	}

	for _, step := range steps {
		log.Info().Msg(step.name)

		if err = step.run(); err != nil {
			return target, fmt.Errorf("%s: %w", step.name, err)
		}
	}

	if opts.Git {
		g.initGit(target, opts)
	}

	log.Info().Str("target", target).Msg("shop site created")

	return target, nil
}

func (o Options) skip() []string {
	if o.Skip == nil {
		return DefaultSkip
	}

	return o.Skip
}

// skipped reports whether the slash separated rel is one of skip or a sqlite sidecar of one.
func skipped(rel string, skip []string) bool {
	for _, s := range skip {
		s = strings.Trim(filepath.ToSlash(filepath.Clean(s)), "/")
		if rel == s {
			return true
		}

		for _, suffix := range sqliteSidecars {
			if rel == s+suffix {
				return true
			}
		}
	}

	return false
}

// copyTree copies source to target recursively, keeping file modes.
// .git and the paths in skip are left out.
func (g *Generator) copyTree(source, target string, skip []string) error {
	return afero.Walk(g.Fs, source, func(path string, info fs.FileInfo, err error) error { //nolint:wrapcheck
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(source, path)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if info.IsDir() && info.Name() == ".git" {
			return filepath.SkipDir
		}

		if skipped(filepath.ToSlash(rel), skip) {
			log.Info().Str("path", path).Msg("skipping runtime data")

			if info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		dst := filepath.Join(target, rel)

		if info.IsDir() {
			return g.Fs.MkdirAll(dst, info.Mode().Perm()|0o700) //nolint:wrapcheck
		}

		if !info.Mode().IsRegular() {
			log.Debug().Str("path", path).Msg("skipping non-regular file")

			return nil
		}

		data, err := afero.ReadFile(g.Fs, path)
		if err != nil {
			return err //nolint:wrapcheck
		}

		return afero.WriteFile(g.Fs, dst, data, info.Mode().Perm()) //nolint:wrapcheck
	})
}

// EnvFile renders the .env.local of a shop.
func EnvFile(opts Options, now time.Time) (string, error) {
	def := settings.Default()

	env := map[string]string{
		"SHOP_NAME":    opts.Name,
		"SHOP_CITY":    opts.City,
		"SHOP_STATE":   opts.State,
		"SHOP_PHONE":   "",
		"SHOP_EMAIL":   "",
		"SHOP_ADDRESS": "",

		"THEME_PRIMARY":   def.Theme.Primary,
		"THEME_SECONDARY": def.Theme.Secondary,
		"THEME_ACCENT":    def.Theme.Accent,

		"SOCIAL_FACEBOOK":  "",
		"SOCIAL_INSTAGRAM": "",
		"SOCIAL_TWITTER":   "",

		"META_TITLE":       opts.Title(),
		"META_DESCRIPTION": opts.Description(),
	}

	for _, day := range models.Weekdays {
		env["SHOP_HOURS_"+strings.ToUpper(day)] = def.Hours.Day(day)
	}

	body, err := godotenv.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("render env: %w", err)
	}

	return fmt.Sprintf("# Auto-generated configuration for %s\n# Created: %s\n\n%s\n",
		opts.Name, now.UTC().Format(time.RFC3339), body), nil
}

func (g *Generator) writeEnv(target string, opts Options) error {
	content, err := EnvFile(opts, g.Now())
	if err != nil {
		return err
	}

	return afero.WriteFile(g.Fs, filepath.Join(target, config.EnvFile), []byte(content), 0o600) //nolint:wrapcheck
}

// Settings returns the initial settings of a shop with placeholder contact fields.
func Settings(opts Options) models.SiteSettings {
	site := settings.Default()
	site.BusinessName = opts.Name
	site.Address = fmt.Sprintf("[Address], %s, %s", opts.City, opts.State)
	site.Phone = PlaceholderPhone
	site.Email = PlaceholderEmail
	site.SocialMedia = models.SocialMedia{}

	return site
}

func (g *Generator) writeSettings(target string, opts Options) error {
	data, err := json.MarshalIndent(Settings(opts), "", "  ")
	if err != nil {
		return err //nolint:wrapcheck
	}

	dir := filepath.Join(target, "data")
	if err = g.Fs.MkdirAll(dir, 0o750); err != nil {
		return err //nolint:wrapcheck
	}

	return afero.WriteFile(g.Fs, filepath.Join(dir, settings.DocumentName+".json"), data, 0o644) //nolint:wrapcheck,gosec
}

// PatchMetadata replaces the Title and Description values of a main.toml.
func PatchMetadata(content []byte, opts Options) []byte {
	content = titleRe.ReplaceAll(content, []byte("${1}"+tomlString(opts.Title())))
	content = descriptionRe.ReplaceAll(content, []byte("${1}"+tomlString(opts.Description())))

	return content
}

// tomlString quotes s as a TOML basic string and escapes $ for regexp expansion.
func tomlString(s string) string {
	var b bytes.Buffer

	b.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '$':
			b.WriteString("$$")
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('"')

	return b.String()
}

func (g *Generator) patchMainConfig(target string, opts Options) error {
	path := filepath.Join(target, strings.TrimPrefix(config.DefaultPath, "./"), config.MainFile)

	content, err := afero.ReadFile(g.Fs, path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	info, err := g.Fs.Stat(path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return afero.WriteFile(g.Fs, path, PatchMetadata(content, opts), info.Mode().Perm()) //nolint:wrapcheck
}

func (g *Generator) copyGitIgnore(source, target string) error {
	dst := filepath.Join(target, GitIgnore)

	exists, err := afero.Exists(g.Fs, dst)
	if err != nil || exists {
		return err //nolint:wrapcheck
	}

	data, err := afero.ReadFile(g.Fs, filepath.Join(source, GitIgnore))
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Msg("source has no " + GitIgnore)

			return nil
		}

		return err //nolint:wrapcheck
	}

	return afero.WriteFile(g.Fs, dst, data, 0o644) //nolint:wrapcheck,gosec
}

// initGit creates the initial commit. Failures are logged and skipped.
func (g *Generator) initGit(target string, opts Options) {
	for _, args := range [][]string{
		{"init"},
		{"add", "."},
		{"commit", "-m", fmt.Sprintf("Initial commit: %s website template", opts.Name)},
	} {
		if err := g.RunGit(target, args...); err != nil {
			log.Warn().Err(err).Strs("args", args).Msg("git setup skipped (may already be initialized)")

			return
		}
	}
}

func runGit(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, bytes.TrimSpace(out))
	}

	return nil
}
