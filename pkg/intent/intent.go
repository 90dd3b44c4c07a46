// Package intent guesses the search intent of a keyword.
package intent

import (
	"strings"

	"github.com/dtnitsch/contentgen/models"
)

var (
	informationalMarkers = []string{"como", "o que", "por que", "quando", "onde", "guia", "tutorial"}
	commercialMarkers    = []string{"melhor", "comparar", "vs", "review", "avaliação", "preço"}
	transactionalMarkers = []string{"comprar", "preço", "desconto", "oferta", "promoção"}
)

// Classify matches the lowercased keyword against the marker lists in a
// fixed order: informational, transactional, commercial. The first list with
// a substring hit wins; no hit means informational.
func Classify(keyword string) models.Intent {
	lower := strings.ToLower(keyword)

	switch {
	case containsAny(lower, informationalMarkers):
		return models.IntentInformational
	case containsAny(lower, transactionalMarkers):
		return models.IntentTransactional
	case containsAny(lower, commercialMarkers):
		return models.IntentCommercial
	}
	return models.IntentInformational
}

// Resolve returns the explicit intent when one is given and classifies the
// keyword otherwise.
func Resolve(keyword string, explicit models.Intent) models.Intent {
	if explicit != "" {
		return explicit
	}
	return Classify(keyword)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
