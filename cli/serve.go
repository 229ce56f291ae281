package cli

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"classical-cipher-backend/handlers"
)

func newServeCommand(a *app) *cobra.Command {
	var release bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if release {
				gin.SetMode(gin.ReleaseMode)
			}
			router := handlers.NewRouter(a.cfg)

			port := a.cfg.Server.Port
			log.Printf("Server starting on port %s", port)
			log.Printf("API endpoints:")
			log.Printf("  GET  /api/v1/health         - Health check")
			log.Printf("  GET  /api/v1/ciphers        - List supported ciphers")
			log.Printf("  POST /api/v1/cipher/encrypt - Encrypt text")
			log.Printf("  POST /api/v1/cipher/decrypt - Decrypt text")
			log.Printf("  POST /api/v1/analyze        - Break a Vigenère ciphertext")
			log.Printf("  GET  /api/v1/analyze/chart  - Letter-frequency chart (HTML)")
			log.Printf("Allowed origins: %v", a.cfg.Server.AllowedOrigins)

			return router.Run(":" + port)
		},
	}
	cmd.Flags().BoolVar(&release, "release", false, "Run gin in release mode")
	return cmd
}
