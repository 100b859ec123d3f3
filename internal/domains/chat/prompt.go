package chat

import (
	"fmt"
	"strings"

	"tutoriafacil-backend/internal/domains/faq"
	"tutoriafacil-backend/internal/domains/tutorial"
)

// ContextLimit caps how many tutorials and FAQs go into the grounding
// prompt so it stays well under the model's input budget.
const ContextLimit = 20

const systemPromptTemplate = `Você é o assistente virtual do Tutoria Fácil, um portal de tutoriais de tecnologia.
Seu papel é ajudar os visitantes com dúvidas sobre tecnologia, celulares, computadores, internet e ganhar dinheiro online.
Seja sempre útil, amigável e forneça respostas claras e detalhadas em português.

Tutoriais disponíveis no site:
%s

Perguntas frequentes:
%s

Se a pergunta for relacionada a algum tutorial disponível, sugira o tutorial específico.
Responda de forma concisa mas completa. Use markdown para formatação quando apropriado.`

// BuildSystemPrompt renders the grounding instruction from a bounded
// snapshot of site content.
func BuildSystemPrompt(tutorials []tutorial.Summary, faqs []*faq.FAQ) string {
	tutorialLines := make([]string, 0, len(tutorials))
	for _, t := range tutorials {
		tutorialLines = append(tutorialLines, fmt.Sprintf("- %s: %s", t.Title, t.Description))
	}

	faqLines := make([]string, 0, len(faqs))
	for _, f := range faqs {
		faqLines = append(faqLines, fmt.Sprintf("P: %s\nR: %s", f.Question, f.Answer))
	}

	return fmt.Sprintf(systemPromptTemplate,
		strings.Join(tutorialLines, "\n"),
		strings.Join(faqLines, "\n"))
}
