package cmd

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"personatag/internal/apihandlers"
)

var (
	serveAddr string
	servePort string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quiz tagging HTTP API server",
	Long: `Starts an HTTP server exposing the classification and profile sync
endpoints. All /api/v1 routes require the configured API secret in the
X-API-Secret header.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		router := gin.Default() // Includes logger and recovery middleware

		apiHandler := apihandlers.NewAPIHandler(appInstance)

		v1 := router.Group("/api/v1",
			apihandlers.RequestID(),
			apihandlers.SecretGate(appInstance.Config.Auth.APISecret),
		)
		{
			v1.POST("/classify", apiHandler.ClassifyHandler)
			v1.POST("/profile/sync", apiHandler.SyncProfileHandler)
		}

		router.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		addr := serveAddr
		port := servePort
		if !cmd.Flags().Changed("addr") && appInstance.Config.Server.Addr != "" {
			addr = appInstance.Config.Server.Addr
		}
		if !cmd.Flags().Changed("port") && appInstance.Config.Server.Port != "" {
			port = appInstance.Config.Server.Port
		}

		listenAddr := fmt.Sprintf("%s:%s", addr, port)
		log.Infof("Starting personatag API server on http://%s", listenAddr)

		if err := router.Run(listenAddr); err != nil {
			log.Errorf("Failed to run API server: %v", err)
			return fmt.Errorf("failed to run API server: %w", err)
		}

		log.Info("personatag API server stopped.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost", "Address to listen on (e.g., '0.0.0.0' for all interfaces)")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")
}
