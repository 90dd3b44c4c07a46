package intent

import (
	"testing"

	"github.com/dtnitsch/contentgen/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		keyword string
		want    models.Intent
	}{
		{keyword: "como fazer seo", want: models.IntentInformational},
		{keyword: "O QUE é marketing", want: models.IntentInformational},
		{keyword: "tutorial de go", want: models.IntentInformational},
		{keyword: "comprar notebook", want: models.IntentTransactional},
		{keyword: "notebook com desconto", want: models.IntentTransactional},
		{keyword: "melhor notebook", want: models.IntentCommercial},
		{keyword: "iphone vs galaxy", want: models.IntentCommercial},
		{keyword: "review fone bluetooth", want: models.IntentCommercial},
		{keyword: "receitas saudáveis", want: models.IntentInformational},
		{keyword: "", want: models.IntentInformational},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			if got := Classify(tt.keyword); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.keyword, got, tt.want)
			}
		})
	}
}

func TestClassify_Precedence(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		want    models.Intent
	}{
		{name: "informational beats transactional", keyword: "como comprar carro", want: models.IntentInformational},
		{name: "informational beats commercial", keyword: "guia do melhor celular", want: models.IntentInformational},
		{name: "transactional beats commercial", keyword: "melhor oferta de tv", want: models.IntentTransactional},
		{name: "shared marker goes transactional", keyword: "preço tv 50", want: models.IntentTransactional},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.keyword); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.keyword, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve("comprar tv", models.IntentCommercial); got != models.IntentCommercial {
		t.Errorf("Resolve() with explicit intent = %q, want commercial", got)
	}
	if got := Resolve("comprar tv", ""); got != models.IntentTransactional {
		t.Errorf("Resolve() without intent = %q, want transactional", got)
	}
}
