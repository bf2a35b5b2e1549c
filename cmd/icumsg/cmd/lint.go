package cmd

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/goicu/icumsg/msgpattern"
	"github.com/goicu/icumsg/msgvalidate"
)

var supportedPatternExtensions = []string{".icu", ".properties"}

// findPatternFiles walks dir the way sqlparser.ParseFilesystems walks its
// filesystem list: lexical fs.WalkDir order, hidden directories skipped,
// duplicate content (by sha256) recorded once and reported rather than
// parsed twice.
func findPatternFiles(dir string) (paths []string, err error) {
	seen := make(map[[32]byte]string)

	err = fs.WalkDir(os.DirFS(dir), ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if strings.HasPrefix(path, ".") || strings.Contains(path, "/.") {
			if d.IsDir() && path != "." {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		supported := false
		for _, e := range supportedPatternExtensions {
			if ext == e {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		full := filepath.Join(dir, path)
		buf, readErr := os.ReadFile(full)
		if readErr != nil {
			return readErr
		}
		hash := sha256.Sum256(buf)
		if existing, dup := seen[hash]; dup {
			log.Debugf("skipping %s: identical contents to %s", full, existing)
			return nil
		}
		seen[hash] = full
		paths = append(paths, full)
		return nil
	})
	return paths, err
}

type lintFinding struct {
	path    string
	warning *msgvalidate.ComplianceWarning
	err     error
}

var lintCmd = &cobra.Command{
	Use:   "lint <dir>",
	Short: "Walk a directory of pattern files and validate each against --locale",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify argument <dir>")
		}

		cfg, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		mode, err := resolveApostropheMode(cfg)
		if err != nil {
			return err
		}
		effectiveLocale := resolveLocale(cfg)

		paths, err := findPatternFiles(args[0])
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Println("No pattern files found in given path")
			return nil
		}

		// Tag every per-file result log line below with a correlation ID, the way a
		// batch job's logs need a shared key when runs overlap in a CI log
		// stream.
		runLog := log.WithField("run", uuid.Must(uuid.NewV4()).String())

		findings := make([]lintFinding, len(paths))
		var group errgroup.Group
		var mu sync.Mutex
		for i, path := range paths {
			i, path := i, path
			group.Go(func() error {
				content, readErr := os.ReadFile(path)
				if readErr != nil {
					mu.Lock()
					findings[i] = lintFinding{path: path, err: readErr}
					mu.Unlock()
					return nil
				}
				store, parseErr := msgpattern.NewParser(mode).Parse(string(content))
				if parseErr != nil {
					mu.Lock()
					findings[i] = lintFinding{path: path, err: parseErr}
					mu.Unlock()
					return nil
				}
				warning, validateErr := msgvalidate.ValidateWithOptions(store, effectiveLocale, msgvalidate.Options{
					CheckArgumentNames: true,
				})
				mu.Lock()
				findings[i] = lintFinding{path: path, warning: warning, err: validateErr}
				mu.Unlock()
				return nil
			})
		}
		_ = group.Wait()

		var errs []error
		var warningCount int
		for _, f := range findings {
			switch {
			case f.err != nil:
				errs = append(errs, fmt.Errorf("%s: %w", f.path, f.err))
				runLog.WithField("file", f.path).Error(f.err)
			case f.warning != nil:
				warningCount++
				runLog.WithField("file", f.path).Warn(f.warning.Error())
			default:
				runLog.WithField("file", f.path).Debug("clean")
			}
		}
		if cfg.StrictCLDRKeys && warningCount > 0 {
			errs = append(errs, fmt.Errorf("%d pattern file(s) have compliance warnings and strict-cldr-keys is set", warningCount))
		}
		if len(errs) > 0 {
			return &msgpattern.ParseErrors{Errors: errs}
		}
		fmt.Printf("%d pattern file(s) checked against locale %q, no compliance errors\n", len(paths), effectiveLocale)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
