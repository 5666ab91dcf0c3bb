package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goplus/llgo/xtool/env"
	"github.com/qiniu/x/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hdrtrans/hdrtrans/config"
	"github.com/hdrtrans/hdrtrans/include"
	"github.com/hdrtrans/hdrtrans/internal/dbg"
	"github.com/hdrtrans/hdrtrans/internal/preproc"
	"github.com/hdrtrans/hdrtrans/names"
	"github.com/hdrtrans/hdrtrans/trans"
)

var (
	cfgFile   string
	outputDir string
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hdrtrans [header...]",
		Short: "translate C/C++ header declarations into target-language declarations",
		Args:  cobra.MinimumNArgs(1),
		RunE:  run,

		SilenceUsage: true,
	}
	rootCmd.Flags().StringVar(&cfgFile, "cfg", config.HDRTRANS_CFG, "config file")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (overrides config)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	conf, err := config.GetConfFromPath(cfgFile)
	if err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "can't read %s, using defaults: %v\n", cfgFile, err)
		}
		conf = config.NewDefault()
	}
	conf.CFlags = env.ExpandEnv(conf.CFlags)
	if outputDir != "" {
		conf.OutputDir = outputDir
	}

	logger := zap.NewNop()
	if verbose {
		dbg.SetDebug(dbg.DbgFlagAll)
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
	}

	// Files are independent translation units: each gets a fresh
	// Context and expander, nothing carries over.
	var errs errors.List
	for _, header := range args {
		if err := translateFile(conf, logger, header); err != nil {
			errs.Add(fmt.Errorf("%s: %w", header, err))
		}
	}
	return errs.ToError()
}

func translateFile(conf *config.Config, logger *zap.Logger, header string) error {
	data, err := config.ReadHeaderFile(header)
	if err != nil {
		return err
	}

	ctx, err := trans.NewContext(&trans.Config{
		Policy:            names.New(conf.TrimPrefixes),
		IgnoredNamespaces: conf.IgnoredNamespaces,
		Logger:            logger,
	})
	if err != nil {
		return err
	}

	t := &trans.Translator{
		Ctx: ctx,
		Exp: include.NewExpander(include.Passthrough{}, conf.IncludeDirs, logger),
		Pre: &preproc.Cmd{Path: conf.Preprocessor, Args: strings.Fields(conf.CFlags)},
	}

	var out bytes.Buffer
	if err := t.Translate(bytes.NewReader(data), &out); err != nil {
		return err
	}

	outFile := outputName(conf, header)
	if dir := filepath.Dir(outFile); dir != "." {
		if err := os.MkdirAll(dir, 0744); err != nil {
			return err
		}
	}
	return os.WriteFile(outFile, out.Bytes(), 0644)
}

// /path/to/foo.h -> <outputDir>/foo.d; stdin input falls back to the
// configured package name.
func outputName(conf *config.Config, header string) string {
	_, file := filepath.Split(header)
	if file == "-" || file == "" {
		file = conf.Name
		if file == "" {
			file = "out"
		}
	}
	if ext := filepath.Ext(file); ext != "" {
		file = strings.TrimSuffix(file, ext)
	}
	return filepath.Join(conf.OutputDir, file+".d")
}
