// Package models contain needed models
package models

import "classical-cipher-backend/analysis"

// Stage is one cipher of a cascade.
type Stage struct {
	Cipher string   `json:"cipher" binding:"required"`
	Keys   []string `json:"keys"`
}

// CipherRequest represents an encrypt or decrypt request. Cipher "cascade"
// runs Stages in order; any other cipher uses Keys, falling back to the
// configured keys when Keys is empty.
type CipherRequest struct {
	Cipher string   `json:"cipher" binding:"required"`
	Text   string   `json:"text"`
	Keys   []string `json:"keys"`
	Stages []Stage  `json:"stages" binding:"omitempty,dive"`
}

// CipherResponse represents the result of an encrypt or decrypt request
type CipherResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Cipher  string   `json:"cipher,omitempty"`
	Stages  []string `json:"stages,omitempty"`
	Result  string   `json:"result"`
}

// AnalyzeRequest represents a ciphertext-only attack request
type AnalyzeRequest struct {
	Ciphertext string `json:"ciphertext" binding:"required"`
}

// AnalyzeResponse represents the outcome of an attack
type AnalyzeResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	ID      string           `json:"id,omitempty"`
	Result  *analysis.Result `json:"result,omitempty"`
}

// ChartRequest represents a frequency chart request
type ChartRequest struct {
	Title string `json:"title" form:"title"`
	Text  string `json:"text" form:"text" binding:"required"`
}
