package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/guildwatch/announcer/pkg/config"
	"github.com/guildwatch/announcer/pkg/logging"
	"github.com/guildwatch/announcer/pkg/notification"

	archive "github.com/guildwatch/announcer/repos/archive"
	discord "github.com/guildwatch/announcer/repos/discord"
	resend "github.com/guildwatch/announcer/repos/resend"
	stratz "github.com/guildwatch/announcer/repos/stratz"

	announce "github.com/guildwatch/announcer/services/announce"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Failed to read .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := logging.Setup(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stratzService := stratz.NewService(cfg.StratzAPIURL, cfg.StratzJWT)
	discordService := discord.NewService(cfg.DiscordWebhookURL)

	var mirrors []notification.Sender
	if cfg.MirrorEmail() {
		log.Infof("Mirroring announcements to %d e-mail recipient(s)", len(cfg.ResendTo))
		mirrors = append(mirrors, resend.NewService(cfg.ResendKey, cfg.ResendFrom, cfg.ResendTo))
	}
	if cfg.Archive() {
		firestoreClient, err := archive.NewFirestoreClient(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsJSON)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()

		log.Infof("Archiving announcements in Firestore project %s", cfg.FirebaseProjectID)
		mirrors = append(mirrors, archive.NewService(firestoreClient, cfg.GuildID))
	}

	announceService := announce.NewAnnounceService(
		stratzService,
		announce.NewFanout(discordService, mirrors...),
		announce.Options{
			GuildID:    cfg.GuildID,
			Take:       cfg.ScanTake,
			MinPlayers: cfg.MinPlayers,
			Period:     cfg.ScanPeriod,
		},
	)

	announceService.Run(ctx)
}
