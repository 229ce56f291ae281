// Package report renders letter-frequency charts for analysis results.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"classical-cipher-backend/analysis"
	"classical-cipher-backend/crypto"
)

// englishFrequencies are the relative letter frequencies of English, A..Z.
var englishFrequencies = [crypto.AlphabetSize]float64{
	0.08167, 0.01492, 0.02782, 0.04253, 0.12702, 0.02228, 0.02015,
	0.06094, 0.06966, 0.00153, 0.00772, 0.04025, 0.02406, 0.06749,
	0.07507, 0.01929, 0.00095, 0.05987, 0.06327, 0.09056, 0.02758,
	0.00978, 0.0236, 0.0015, 0.01974, 0.00074,
}

func letterLabels() []string {
	labels := make([]string, crypto.AlphabetSize)
	for i := range labels {
		labels[i] = string(rune('A' + i))
	}
	return labels
}

// FrequencyChart plots the share of each letter in text next to English.
func FrequencyChart(title, text string) *charts.Bar {
	counts := analysis.LetterFrequencies(text)
	total := 0
	for _, c := range counts {
		total += c
	}

	observed := make([]opts.BarData, len(counts))
	expected := make([]opts.BarData, len(counts))
	for i, c := range counts {
		share := 0.0
		if total > 0 {
			share = float64(c) / float64(total) * 100
		}
		observed[i] = opts.BarData{Value: fmt.Sprintf("%.2f", share)}
		expected[i] = opts.BarData{Value: fmt.Sprintf("%.2f", englishFrequencies[i]*100)}
	}

	subtitle := fmt.Sprintf("n=%d letters", total)
	if ic, err := analysis.IndexOfCoincidence(crypto.LettersOnly(text)); err == nil {
		subtitle = fmt.Sprintf("n=%d letters, IC=%.4f", total, ic)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
	)
	bar.SetXAxis(letterLabels()).
		AddSeries("ciphertext %", observed).
		AddSeries("english %", expected)
	return bar
}

// RenderFrequencyChart writes the chart as a standalone HTML page.
func RenderFrequencyChart(w io.Writer, title, text string) error {
	if err := FrequencyChart(title, text).Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
