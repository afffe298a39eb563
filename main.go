package main

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pitBossBot/config"
	"pitBossBot/logger"
	"pitBossBot/models"
	"pitBossBot/scheduler"
	"pitBossBot/services"
	"pitBossBot/services/botService"
	"pitBossBot/services/common"
)

var db *gorm.DB
var cfg config.Config

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file found, using process environment")
	}

	cfg = config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatalf("MYSQL_URL not set in environment variables")
	}

	db, err = gorm.Open(mysql.Open(config.MySQLDSN(cfg.DatabaseURL)), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.TransactionRecord{},
		&models.Bet{},
		&models.BetEvent{},
		&models.ErrorLog{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func main() {
	zlog, err := logger.New("pit-boss-bot", cfg.Env)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer zlog.Sync()
	common.SetLogger(zlog)

	if cfg.DiscordToken == "" {
		zlog.Fatal("DISCORD_BOT_TOKEN not set in environment variables")
	}

	if _, err := botService.EnsureBotIdentity(db); err != nil {
		zlog.Fatal("error provisioning house identity", zap.Error(err))
	}

	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		zlog.Fatal("error creating Discord session", zap.Error(err))
	}

	dg.AddHandler(interactionCreate)
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		err := s.UpdateGameStatus(0, "Taking Wagers!")
		if err != nil {
			return
		}
	})

	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsGuildMessageReactions

	err = dg.Open()
	if err != nil {
		zlog.Fatal("error opening Discord session", zap.Error(err))
	}
	defer func(dg *discordgo.Session) {
		err := dg.Close()
		if err != nil {

		}
	}(dg)

	err = services.RegisterCommands(dg)
	if err != nil {
		zlog.Fatal("error registering commands", zap.Error(err))
	}

	scheduler.SetupCron(db, zlog)

	zlog.Info("Bot is running. Press CTRL+C to exit.")
	select {}
}

func interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		services.HandleSlashCommand(s, i, db)
	case discordgo.InteractionMessageComponent:
		services.HandleComponentInteraction(s, i, db)
	}
}
