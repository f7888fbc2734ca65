package main

import (
	"errors"
	"os/signal"
	"syscall"

	"Rozi/config"
	"Rozi/model"
	"Rozi/notify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// tailCmd 订阅 kafka 通知 topic 并打印
var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Follow notifications published to kafka",
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf := config.GetGlobalConf().Kafka
		if conf.Brokers == "" {
			return errors.New("kafka.brokers is not configured")
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log.Infof("tailing %s as %s", conf.Topic, conf.GroupID)
		return notify.Tail(ctx, conf.Brokers, conf.GroupID, conf.Topic, func(n model.Notification) {
			log.WithFields(log.Fields{
				"event": n.EventID,
				"kind":  n.Kind,
				"user":  n.UserID,
			}).Infof("%s: %s", n.Title, n.Description)
		})
	},
}
