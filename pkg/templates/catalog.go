package templates

import "github.com/dtnitsch/contentgen/models"

// KeywordPlaceholder is substituted with the user's keyword.
const KeywordPlaceholder = "keyword"

// FAQTemplate is a question/answer pair with placeholders.
type FAQTemplate struct {
	Question string
	Answer   string
}

// MediaTemplate is a catalog entry for a media suggestion.
type MediaTemplate struct {
	Kind        models.MediaKind
	Description string
	Placement   string
	AltText     string
}

// Set is the group of templates registered for one intent.
type Set struct {
	Headings []string
	Sections []string
	FAQ      []FAQTemplate
}

var sets = map[models.Intent]Set{
	models.IntentInformational: {
		Headings: []string{
			"Como {keyword}: Guia Completo 2024",
			"Tudo sobre {keyword}: Guia Definitivo",
			"{keyword}: O que Você Precisa Saber",
		},
		Sections: []string{
			"O que é {keyword}?",
			"Por que {keyword} é importante?",
			"Como fazer {keyword} passo a passo",
			"Benefícios de {keyword}",
			"Erros comuns em {keyword}",
			"Ferramentas para {keyword}",
			"Exemplos práticos de {keyword}",
			"Conclusão",
		},
		FAQ: []FAQTemplate{
			{Question: "O que é {keyword}?", Answer: "Explicação detalhada sobre {keyword} e sua importância."},
			{Question: "Como começar com {keyword}?", Answer: "Passos iniciais para implementar {keyword} com sucesso."},
			{Question: "Quais são os benefícios de {keyword}?", Answer: "Principais vantagens e benefícios de utilizar {keyword}."},
			{Question: "Quanto tempo leva para ver resultados com {keyword}?", Answer: "Cronograma típico para obter resultados com {keyword}."},
			{Question: "Quais ferramentas são necessárias para {keyword}?", Answer: "Lista das principais ferramentas recomendadas para {keyword}."},
		},
	},
	models.IntentCommercial: {
		Headings: []string{
			"Melhor {keyword} 2024: Comparação Completa",
			"{keyword}: Qual Escolher? Guia de Compra",
			"Top 10 {keyword} Mais Recomendados",
		},
		Sections: []string{
			"O que considerar ao escolher {keyword}",
			"Melhores opções de {keyword}",
			"Comparação de preços",
			"Prós e contras",
			"Onde comprar {keyword}",
			"Avaliações de usuários",
			"Nossa recomendação",
		},
		FAQ: []FAQTemplate{
			{Question: "Qual é o melhor {keyword}?", Answer: "Análise das melhores opções de {keyword} disponíveis no mercado."},
			{Question: "Quanto custa {keyword}?", Answer: "Faixa de preços e fatores que influenciam o custo de {keyword}."},
			{Question: "Vale a pena investir em {keyword}?", Answer: "Análise do retorno sobre investimento em {keyword}."},
			{Question: "Como escolher o {keyword} ideal?", Answer: "Critérios importantes para selecionar o melhor {keyword}."},
		},
	},
	models.IntentTransactional: {
		Headings: []string{
			"Comprar {keyword}: Melhores Ofertas 2024",
			"{keyword} com Desconto: Onde Encontrar",
			"Promoções de {keyword}: Guia de Compras",
		},
		Sections: []string{
			"Melhores ofertas de {keyword}",
			"Como economizar na compra",
			"Onde comprar com segurança",
			"Formas de pagamento",
			"Garantia e suporte",
			"Entrega e frete",
		},
		FAQ: []FAQTemplate{
			{Question: "Onde comprar {keyword}?", Answer: "Melhores locais e plataformas para adquirir {keyword}."},
			{Question: "Como pagar por {keyword}?", Answer: "Opções de pagamento disponíveis para {keyword}."},
			{Question: "Há garantia para {keyword}?", Answer: "Informações sobre garantia e suporte para {keyword}."},
			{Question: "Qual o prazo de entrega de {keyword}?", Answer: "Tempo médio de entrega e opções de frete para {keyword}."},
		},
	},
}

// SubsectionPool is the fixed set of generic H3 labels.
var SubsectionPool = []string{
	"Definição e conceitos básicos",
	"Principais características",
	"Vantagens e benefícios",
	"Como implementar",
	"Exemplos práticos",
	"Dicas importantes",
	"Erros a evitar",
	"Ferramentas recomendadas",
}

var mediaCatalog = []MediaTemplate{
	{
		Kind:        models.MediaImage,
		Description: "Infográfico explicativo sobre {keyword}",
		Placement:   "Após a introdução",
		AltText:     "Infográfico sobre {keyword}",
	},
	{
		Kind:        models.MediaVideo,
		Description: "Vídeo tutorial demonstrando {keyword}",
		Placement:   "Seção de como fazer",
		AltText:     "Vídeo tutorial de {keyword}",
	},
	{
		Kind:        models.MediaImage,
		Description: "Gráfico com estatísticas de {keyword}",
		Placement:   "Seção de benefícios",
		AltText:     "Estatísticas sobre {keyword}",
	},
	{
		Kind:        models.MediaInfographic,
		Description: "Checklist visual para {keyword}",
		Placement:   "Antes da conclusão",
		AltText:     "Checklist de {keyword}",
	},
}

// SetFor returns the templates for intent, falling back to the
// informational set for unknown intents.
func SetFor(intent models.Intent) Set {
	if s, ok := sets[intent]; ok {
		return s
	}
	return sets[models.IntentInformational]
}
