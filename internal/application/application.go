// Boilerplate for initializing the program
package application

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/oklog/run"

	"github.com/voice-herald/voice-herald/internal/bot"
	"github.com/voice-herald/voice-herald/internal/db"
	"github.com/voice-herald/voice-herald/internal/server"
	"github.com/voice-herald/voice-herald/internal/speech"
)

const (
	appVersion    = "1.0"
	fatalErrorMsg = "\nfatal: %v\n\nA fatal error occurred. Voice Herald shut down.\n"
	separator     = "\n——————————————————————————————————————\n\n"
)

func Initialize() {
	fmt.Print(
		"\n( ｀ー´)ノ Voice Herald v"+appVersion+"\n",
		"Announcing voice channel comings and goings out loud.\n",
	)

	botConfig, serverConfig, dbPool, err := validateEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, fatalErrorMsg, err)
		os.Exit(1)
	}

	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal, syscall.SIGINT, syscall.SIGTERM)

	g := run.Group{}

	g.Add(func() error {
		<-osSignal
		return nil
	}, func(error) {
		close(osSignal)
		if err = bot.Stop(botConfig); err != nil {
			log.Println(err)
		}
		if err = dbPool.Close(); err != nil {
			log.Println("could not close database pool:", err)
		}
	})

	if serverConfig != nil {
		g.Add(func() error { return server.Start(serverConfig) }, func(error) {
			if err = server.Stop(serverConfig); err != nil {
				log.Println(err)
			}
		})
	}

	err = bot.Run(botConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, fatalErrorMsg, err)
		os.Exit(1)
	}

	err = g.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, fatalErrorMsg, err)
		os.Exit(1)
	}

	fmt.Println("See you later! o/")
}

func validateEnv() (*bot.Config, *server.Config, db.DatabasePool, error) {
	envPath := flag.String("envFile", "", "program will load environment variables from the file at this path if provided")
	statusPort := flag.String(
		"statusPort",
		"",
		"port at which the status server will listen; disabled when empty",
	)
	dbDisabled := flag.Bool(
		"dbDisabled",
		false,
		"disable the use of a sqlite3 database in favor of built-in message defaults, losing any customization",
	)
	dbPathFlag := flag.String(
		"dbPath",
		"./.voice-herald-db.sqlite3",
		"preferred location of the database file",
	)
	speechDir := flag.String(
		"speechCacheDir",
		"./.voice-herald-audio",
		"folder where synthesized audio clips are cached",
	)
	flag.Parse()

	fmt.Println(separator + "Starting setup...\n\nLoading environment variables")
	defer fmt.Print(separator)

	if *envPath != "" {
		fmt.Println(
			"Loading variables from",
			*envPath,
			"— note that these will not override any existing environment variables",
		)
		if err := godotenv.Load(*envPath); err != nil {
			return nil, nil, db.DatabasePool{}, errors.New("could not load .env file at provided path")
		}
	} else {
		fmt.Println("note: no .env file provided")
	}

	var dbPool db.DatabasePool
	if *dbDisabled {
		fmt.Println("Database disabled — message customization unavailable")
		dbPool = db.DatabasePool{Enabled: false}
	} else {
		var dbErr error
		dbPool, dbErr = setupDatabase(*dbPathFlag)
		if dbErr != nil {
			return nil, nil, db.DatabasePool{}, fmt.Errorf("could not initialize database: %w", dbErr)
		}
	}

	speaker := speech.NewSpeaker(speech.NewHtgoEngine(filepath.Clean(*speechDir)))

	botConf := &bot.Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		AppID:         os.Getenv("APP_ID"),
		ObserveUserID: os.Getenv("OBSERVE_USER_ID"),
		Settings:      dbPool,
		Speaker:       speaker,
	}
	if botConf.BotToken == "" || botConf.AppID == "" {
		return nil, nil, db.DatabasePool{}, errors.New(
			"required variables BOT_TOKEN and/or APP_ID missing from environment",
		)
	}

	if botConf.ObserveUserID == "" {
		fmt.Println("\nNo OBSERVE_USER_ID provided — following the bot's own voice presence")
	}

	var serverConf *server.Config
	if *statusPort != "" {
		serverConf = &server.Config{
			Port:   *statusPort,
			Status: botConf.Status,
		}
	}

	fmt.Println("\nSetup complete! Time to start listening!")

	return botConf, serverConf, dbPool, nil
}

func setupDatabase(dbPath string) (db.DatabasePool, error) {
	cleanedDbPath := filepath.Clean(dbPath)
	fmt.Println("\nInitializing database at", cleanedDbPath)

	err := db.InitializeDatabase(cleanedDbPath)
	if err != nil {
		return db.DatabasePool{}, fmt.Errorf("could not create database: %w", err)
	}
	err = db.MakeMigrations(cleanedDbPath)
	if err != nil {
		return db.DatabasePool{}, fmt.Errorf("could not make database migrations: %w", err)
	}

	dbPool, err := db.NewDatabasePool(cleanedDbPath)
	if err != nil {
		err = fmt.Errorf("could not create database pool: %w", err)
	}

	return dbPool, err
}
