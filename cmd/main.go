package main

import (
	"flag"
	"fmt"

	"github.com/Clement-Micard/ExtendedStorage/config"
	"github.com/Clement-Micard/ExtendedStorage/filesystem"
	"github.com/Clement-Micard/ExtendedStorage/util"
)

func main() {
	// Parse command line arguments
	var (
		verbose    int
		configPath string
		overwrite  bool
		newName    string
	)
	flag.StringVar(&configPath, "config", "", "Path to config file (YAML or JSON)")
	flag.StringVar(&configPath, "c", "", "--config (shorthand)")
	flag.BoolVar(&overwrite, "overwrite", false, "Overwrite existing destination files during copy/move")
	flag.StringVar(&newName, "name", "", "Destination name for copy/move. Defaults to the source folder's own name.")
	flag.IntVar(&verbose, "verbose", 3, "Log verbosity level between 1 (error) and 5 (trace). Default is 3 (info).")
	flag.IntVar(&verbose, "v", 3, "--verbose (shorthand)")
	flag.Parse()

	// Initialize logger
	if verbose < 1 {
		verbose = 1
	}
	if verbose > 5 {
		verbose = 5
	}
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	logLvl := logLvls[verbose-1]
	util.InitializeLogger(logLvl)
	logger := util.GetLogger("main")

	cfg := config.NewDefaultConfig()
	if configPath != "" {
		loaded, err := config.NewConfigFromFile(configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("config", configPath).Msg("Failed to load config file")
		}
		cfg = loaded
	}
	cfg.LogLvl = logLvl
	if overwrite {
		cfg.OverwriteOnCopy = true
	}

	st := filesystem.New(cfg)

	cmd := flag.Arg(0)
	switch cmd {
	case "list":
		runList(st, logger, flag.Arg(1))
	case "copy":
		runCopy(st, logger, flag.Arg(1), flag.Arg(2), newName)
	case "move":
		runMove(st, logger, flag.Arg(1), flag.Arg(2), newName)
	case "remove":
		runRemove(st, logger, flag.Arg(1))
	case "":
		logger.Fatal().Msg("No command given; expected one of list, copy, move, remove")
	default:
		logger.Fatal().Str("command", cmd).Msg("Unknown command; expected one of list, copy, move, remove")
	}
}

func runList(st *filesystem.Storage, logger util.Logger, path string) {
	folder, ok := st.GetFolderFromPath(path)
	if !ok {
		logger.Fatal().Str("path", path).Msg("Folder not found")
	}

	items := folder.GetItems()
	for _, it := range items {
		kind := "file"
		if it.Attributes().IsDirectory() {
			kind = "dir"
		}
		fmt.Printf("%-4s  %s  %s\n", kind, it.DateCreated().Format("2006-01-02 15:04:05"), it.Name())
	}
	logger.Info().Str("path", folder.Path()).Int("items", len(items)).Msg("Listed folder")
}

func runCopy(st *filesystem.Storage, logger util.Logger, src, dst, newName string) {
	source, ok := st.GetFolderFromPath(src)
	if !ok {
		logger.Fatal().Str("path", src).Msg("Source folder not found")
	}
	dest, ok := st.GetFolderFromPath(dst)
	if !ok {
		logger.Fatal().Str("path", dst).Msg("Destination folder not found")
	}

	name := newName
	if name == "" {
		name = source.Name()
	}
	created, err := source.CopyTo(dest, name)
	if err != nil {
		logger.Fatal().Err(err).Str("src", src).Str("dst", dst).Msg("Copy failed")
	}
	logger.Info().Str("src", source.Path()).Str("dst", created.Path()).Msg("Copy finished")
}

func runMove(st *filesystem.Storage, logger util.Logger, src, dst, newName string) {
	source, ok := st.GetFolderFromPath(src)
	if !ok {
		logger.Fatal().Str("path", src).Msg("Source folder not found")
	}
	dest, ok := st.GetFolderFromPath(dst)
	if !ok {
		logger.Fatal().Str("path", dst).Msg("Destination folder not found")
	}

	created, err := source.MoveTo(dest, newName)
	if err != nil {
		logger.Fatal().Err(err).Str("src", src).Str("dst", dst).Msg("Move failed")
	}
	logger.Info().Str("src", source.Path()).Str("dst", created.Path()).Msg("Move finished; source directory skeleton remains")
}

func runRemove(st *filesystem.Storage, logger util.Logger, path string) {
	if folder, ok := st.GetFolderFromPath(path); ok {
		if err := folder.Delete(); err != nil {
			logger.Fatal().Err(err).Str("path", path).Msg("Remove failed")
		}
		logger.Info().Str("path", folder.Path()).Msg("Removed folder")
		return
	}
	if file, ok := st.GetFileFromPath(path); ok {
		if err := file.Delete(); err != nil {
			logger.Fatal().Err(err).Str("path", path).Msg("Remove failed")
		}
		logger.Info().Str("path", file.Path()).Msg("Removed file")
		return
	}
	logger.Fatal().Str("path", path).Msg("Path not found")
}
