// Package handlers is made to handle requests
package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"classical-cipher-backend/analysis"
	"classical-cipher-backend/config"
	"classical-cipher-backend/crypto"
	"classical-cipher-backend/models"
	"classical-cipher-backend/report"
)

type CipherHandler struct {
	keys config.KeysConfig
}

func NewCipherHandler(keys config.KeysConfig) *CipherHandler {
	return &CipherHandler{
		keys: keys,
	}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Classical cipher API is running",
		"version": "1.0.0",
	})
}

func (h *CipherHandler) ListCiphers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ciphers": crypto.Kinds(),
		"cascade": gin.H{
			"kind":        crypto.KindChain,
			"description": "Stages applied in order, decoded in reverse. A Playfair stage decodes only when it runs first",
			"default":     []crypto.Kind{crypto.KindVigenere, crypto.KindPlayfair},
		},
	})
}

func (h *CipherHandler) Encrypt(c *gin.Context) {
	h.transform(c, true)
}

func (h *CipherHandler) Decrypt(c *gin.Context) {
	h.transform(c, false)
}

func (h *CipherHandler) transform(c *gin.Context, encode bool) {
	var req models.CipherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	codec, err := h.buildCodec(req)
	if err != nil {
		c.JSON(statusFor(err), models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid cipher configuration: %v", err),
		})
		return
	}

	var result string
	if encode {
		result, err = codec.Encode(req.Text)
	} else {
		result, err = codec.Decode(req.Text)
	}
	if err != nil {
		c.JSON(statusFor(err), models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Cipher failed: %v", err),
		})
		return
	}

	resp := models.CipherResponse{
		Success: true,
		Message: "ok",
		Cipher:  string(codec.Kind()),
		Result:  result,
	}
	if chain, ok := codec.(*crypto.Chain); ok {
		for _, k := range chain.Stages() {
			resp.Stages = append(resp.Stages, string(k))
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CipherHandler) buildCodec(req models.CipherRequest) (crypto.Codec, error) {
	if strings.EqualFold(strings.TrimSpace(req.Cipher), string(crypto.KindChain)) {
		stages := req.Stages
		if len(stages) == 0 {
			stages = []models.Stage{
				{Cipher: string(crypto.KindVigenere), Keys: []string{h.keys.CascadeVigenere}},
				{Cipher: string(crypto.KindPlayfair), Keys: []string{h.keys.CascadePlayfair}},
			}
		}
		codecs := make([]crypto.Codec, 0, len(stages))
		for i, s := range stages {
			codec, err := h.newCodec(s.Cipher, s.Keys)
			if err != nil {
				return nil, fmt.Errorf("stage %d: %w", i, err)
			}
			codecs = append(codecs, codec)
		}
		return crypto.NewChain(codecs...)
	}
	return h.newCodec(req.Cipher, req.Keys)
}

func (h *CipherHandler) newCodec(name string, keys []string) (crypto.Codec, error) {
	kind, err := crypto.ParseKind(name)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		keys = h.keys.ForKind(kind)
	}
	return crypto.New(kind, keys...)
}

func (h *CipherHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.AnalyzeResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	id := uuid.NewString()
	result, err := analysis.Break(req.Ciphertext)
	if err != nil {
		log.Printf("analysis %s failed: %v", id, err)
		c.JSON(statusFor(err), models.AnalyzeResponse{
			Success: false,
			Message: fmt.Sprintf("Analysis failed: %v", err),
			ID:      id,
		})
		return
	}

	log.Printf("analysis %s: key length %d via %s", id, result.KeyLength, result.Method)
	c.Header("X-Analysis-ID", id)
	c.JSON(http.StatusOK, models.AnalyzeResponse{
		Success: true,
		Message: "ok",
		ID:      id,
		Result:  result,
	})
}

func (h *CipherHandler) FrequencyChart(c *gin.Context) {
	var req models.ChartRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}
	if req.Title == "" {
		req.Title = "Letter frequencies"
	}

	var buf bytes.Buffer
	if err := report.RenderFrequencyChart(&buf, req.Title, req.Text); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": fmt.Sprintf("Failed to render chart: %v", err),
		})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// statusFor maps engine errors to HTTP status codes. Everything the engine
// rejects is caused by the request; only statistics failures get their own code.
func statusFor(err error) int {
	if errors.Is(err, analysis.ErrDegenerateStatistics) || errors.Is(err, analysis.ErrInvalidKeyLength) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}
