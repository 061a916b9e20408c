package cmd

import (
	"fmt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"promptrouter/internal/apihandlers"
)

var (
	serveAddr string // Listen address
	servePort string // Listen port
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run promptrouter as an HTTP API server",
	Long: `Starts an HTTP server exposing the classifier via a RESTful API:
POST /api/v1/classify, GET /api/v1/keywords and GET /health.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		// Flags win over config; config supplies the defaults.
		addr := serveAddr
		if addr == "" {
			addr = appInstance.Config.Server.Addr
		}
		port := servePort
		if port == "" {
			port = appInstance.Config.Server.Port
		}

		gin.SetMode(gin.ReleaseMode)
		router := gin.New()
		router.Use(gin.Recovery())
		router.Use(apihandlers.RequestID())

		apihandlers.NewAPIHandler(appInstance).RegisterRoutes(router)

		listenAddr := fmt.Sprintf("%s:%s", addr, port)
		log.Infof("Starting promptrouter API server on http://%s", listenAddr)

		// router.Run blocks unless an error occurs
		if err := router.Run(listenAddr); err != nil {
			log.Errorf("Failed to run API server: %v", err)
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (e.g., '0.0.0.0' for all interfaces)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on")
}
