package main

import (
	"fmt"
	"net/http"

	"github.com/pflow-xyz/go-lindenmayer/preset"
	"github.com/pflow-xyz/go-lindenmayer/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and WebSocket API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)

		addr, _ := cmd.Flags().GetString("addr")
		dbPath, _ := cmd.Flags().GetString("db")

		var store server.PresetStore
		if dbPath != "" {
			sqlStore, err := preset.OpenStore(dbPath)
			if err != nil {
				return fmt.Errorf("open preset store: %w", err)
			}
			defer sqlStore.Close()
			store = sqlStore
		}

		srv := server.New(log, store)
		log.Info("listening", "addr", addr, "presets", dbPath != "")
		return http.ListenAndServe(addr, srv.Handler())
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("db", "presets.db", "Preset store database path (empty disables the store)")
	rootCmd.AddCommand(serveCmd)
}
