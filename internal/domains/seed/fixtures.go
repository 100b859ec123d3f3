package seed

import (
	"tutoriafacil-backend/internal/domains/blog"
	"tutoriafacil-backend/internal/domains/category"
	"tutoriafacil-backend/internal/domains/faq"
	"tutoriafacil-backend/internal/domains/tutorial"
)

// The accessor functions hand out copies so callers can fill in resolved
// ids without mutating the shared fixture data.

func CategoryFixtures() []category.CreateRequest {
	out := make([]category.CreateRequest, len(categoryFixtures))
	copy(out, categoryFixtures)
	return out
}

func TutorialFixtures() []tutorial.CreateRequest {
	out := make([]tutorial.CreateRequest, len(tutorialFixtures))
	copy(out, tutorialFixtures)
	return out
}

func FAQFixtures() []faq.CreateRequest {
	out := make([]faq.CreateRequest, len(faqFixtures))
	copy(out, faqFixtures)
	return out
}

func BlogFixtures() []blog.CreateRequest {
	out := make([]blog.CreateRequest, len(blogFixtures))
	copy(out, blogFixtures)
	return out
}

var categoryFixtures = []category.CreateRequest{
	{Name: "Computador", Slug: "computador", Icon: "monitor", Description: "Tutoriais sobre PCs e notebooks"},
	{Name: "Celular", Slug: "celular", Icon: "smartphone", Description: "Dicas para smartphones e tablets"},
	{Name: "Internet", Slug: "internet", Icon: "wifi", Description: "Tutoriais sobre internet e redes"},
	{Name: "Ganhar Dinheiro", Slug: "ganhar-dinheiro", Icon: "dollar-sign", Description: "Como ganhar dinheiro online"},
	{Name: "Programação", Slug: "programacao", Icon: "code", Description: "Tutoriais de programação"},
}

// tutorialFixtures carry the category slug in CategoryID; the seeder
// resolves it to the real category id before insert.
var tutorialFixtures = []tutorial.CreateRequest{
	{
		Title:       "Como Formatar um PC Windows",
		Slug:        "como-formatar-pc-windows",
		Description: "Guia completo passo a passo para formatar seu computador Windows e reinstalar o sistema",
		Content: `# Como Formatar um PC Windows

## Introdução
Formatar o PC é uma solução eficaz para resolver problemas de lentidão, vírus ou simplesmente começar do zero.

## O que você vai precisar
- Pendrive com pelo menos 8GB
- Backup dos seus arquivos importantes
- Chave de licença do Windows (se aplicável)

## Passo 1: Faça Backup dos Dados
Antes de formatar, copie todos os arquivos importantes para um HD externo ou nuvem.

## Passo 2: Crie um Pendrive Bootável
1. Baixe a ferramenta de criação de mídia da Microsoft
2. Execute e selecione "Criar mídia de instalação"
3. Escolha o pendrive como destino

## Passo 3: Configure a BIOS
1. Reinicie o PC e pressione F2, F12 ou DEL
2. Vá em Boot Options
3. Coloque o USB como primeira opção

## Passo 4: Instale o Windows
1. Reinicie com o pendrive conectado
2. Siga as instruções na tela
3. Escolha "Instalação personalizada"
4. Delete todas as partições e crie novas

## Conclusão
Após a instalação, instale os drivers e seus programas favoritos.`,
		CategoryID: "computador",
		Tags:       []string{"windows", "formatação", "instalação", "pc"},
		ImageURL:   "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=800",
		IsFeatured: true,
	},
	{
		Title:       "Como Criar um Site com Inteligência Artificial",
		Slug:        "como-criar-site-com-ia",
		Description: "Aprenda a usar ferramentas de IA para criar seu próprio site sem programar",
		Content: `# Como Criar um Site com Inteligência Artificial

## Introdução
A inteligência artificial revolucionou a criação de sites. Agora qualquer pessoa pode criar um site profissional.

## Ferramentas Recomendadas
- **Wix ADI**: Cria sites automaticamente baseado nas suas respostas
- **Framer AI**: Design moderno com IA
- **Emergent**: Desenvolvimento completo com IA

## Passo 1: Defina o Objetivo
Decida o tipo de site:
- Portfolio pessoal
- Loja virtual
- Blog
- Site institucional

## Passo 2: Escolha a Ferramenta
Para iniciantes, recomendamos o Wix ADI pela simplicidade.

## Passo 3: Responda as Perguntas
A IA vai perguntar sobre:
- Seu nicho de mercado
- Cores preferidas
- Funcionalidades necessárias

## Passo 4: Personalize
Após a criação automática:
- Edite textos
- Troque imagens
- Ajuste cores

## Passo 5: Publique
Configure um domínio e publique seu site!`,
		CategoryID: "programacao",
		Tags:       []string{"ia", "site", "web", "inteligência artificial"},
		ImageURL:   "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800",
		IsFeatured: true,
	},
	{
		Title:       "Como Ganhar Dinheiro Online em Moçambique",
		Slug:        "ganhar-dinheiro-online-mocambique",
		Description: "Métodos comprovados para ganhar dinheiro pela internet em Moçambique",
		Content: `# Como Ganhar Dinheiro Online em Moçambique

## Introdução
O mercado digital oferece várias oportunidades para moçambicanos ganharem dinheiro online.

## Método 1: Freelancing
Plataformas como Upwork e Fiverr permitem oferecer serviços:
- Design gráfico
- Redação
- Tradução
- Programação

## Método 2: Marketing de Afiliados
Promova produtos e ganhe comissões:
- Hotmart
- Monetizze
- Amazon Associates

## Método 3: Criação de Conteúdo
- YouTube: monetização após 1000 inscritos
- TikTok: fundo de criadores
- Blog: Google AdSense

## Método 4: Vendas Online
- Crie uma loja no Instagram
- Use marketplaces locais
- Dropshipping internacional

## Método 5: Ensino Online
Crie cursos sobre o que você sabe:
- Udemy
- Hotmart
- Teachable

## Dicas Importantes
1. Tenha paciência - resultados levam tempo
2. Invista em aprendizado
3. Use métodos de pagamento internacionais (Payoneer, Wise)
4. Comece com o que você já sabe fazer`,
		CategoryID: "ganhar-dinheiro",
		Tags:       []string{"dinheiro", "online", "moçambique", "renda extra"},
		ImageURL:   "https://images.unsplash.com/photo-1553729459-efe14ef6055d?w=800",
		IsFeatured: true,
	},
	{
		Title:       "Como Liberar Espaço no Celular Android",
		Slug:        "liberar-espaco-celular-android",
		Description: "Dicas práticas para liberar memória e acelerar seu smartphone Android",
		Content: `# Como Liberar Espaço no Celular Android

## Por que o celular fica cheio?
- Fotos e vídeos
- Cache de aplicativos
- Downloads esquecidos
- Aplicativos não utilizados

## Método 1: Limpar Cache
1. Vá em Configurações > Armazenamento
2. Toque em "Dados em cache"
3. Confirme a limpeza

## Método 2: Google Files
1. Instale o Google Files
2. Use a função "Limpar"
3. Remova arquivos duplicados

## Método 3: Mover para Nuvem
1. Ative backup do Google Fotos
2. Delete fotos locais após backup
3. Use Google Drive para documentos

## Método 4: Desinstalar Apps
1. Identifique apps não utilizados
2. Desinstale ou desative

## Método 5: Cartão SD
Se seu celular suporta:
1. Mova apps para SD
2. Configure câmera para salvar no SD

## Resultado Esperado
Você pode liberar de 2GB a 10GB dependendo do uso.`,
		CategoryID: "celular",
		Tags:       []string{"android", "memória", "armazenamento", "limpeza"},
		ImageURL:   "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=800",
	},
	{
		Title:       "Como Configurar Wi-Fi Mais Rápido",
		Slug:        "configurar-wifi-mais-rapido",
		Description: "Otimize sua rede Wi-Fi e tenha internet mais rápida em casa",
		Content: `# Como Configurar Wi-Fi Mais Rápido

## Diagnóstico Inicial
Teste sua velocidade atual em speedtest.net

## Dica 1: Posição do Roteador
- Coloque em local central
- Evite paredes grossas
- Mantenha longe de microondas

## Dica 2: Canal Wi-Fi
1. Acesse 192.168.0.1 ou 192.168.1.1
2. Vá em configurações wireless
3. Teste canais 1, 6 ou 11 (2.4GHz)
4. Para 5GHz, escolha canais menos congestionados

## Dica 3: Atualizar Firmware
Fabricantes lançam atualizações de segurança e performance.

## Dica 4: Usar 5GHz
Se seu roteador suporta:
- 5GHz = mais rápido, menor alcance
- 2.4GHz = mais alcance, mais interferência

## Dica 5: Extensores de Sinal
Para casas grandes, considere:
- Repetidores Wi-Fi
- Sistema Mesh
- Powerline

## Dica 6: Trocar DNS
Use DNS mais rápidos:
- Google: 8.8.8.8
- Cloudflare: 1.1.1.1`,
		CategoryID: "internet",
		Tags:       []string{"wifi", "internet", "velocidade", "roteador"},
		ImageURL:   "https://images.unsplash.com/photo-1544197150-b99a580bb7a8?w=800",
	},
}

var faqFixtures = []faq.CreateRequest{
	{Question: "Como faço para resetar meu celular?", Answer: "Vá em Configurações > Sistema > Redefinir > Restaurar padrão de fábrica. Lembre-se de fazer backup antes!", Category: "celular"},
	{Question: "O que fazer quando o PC está lento?", Answer: "1. Limpe arquivos temporários\n2. Desative programas de inicialização\n3. Verifique por vírus\n4. Considere adicionar mais RAM ou SSD", Category: "computador"},
	{Question: "Como melhorar a velocidade da internet?", Answer: "Reinicie o roteador, posicione-o em local central, use cabo ethernet quando possível e verifique se há muitos dispositivos conectados.", Category: "internet"},
	{Question: "Como proteger minha conta de hackers?", Answer: "Use senhas fortes e únicas, ative autenticação de dois fatores, não clique em links suspeitos e mantenha seus dispositivos atualizados.", Category: "geral"},
	{Question: "É possível ganhar dinheiro assistindo vídeos?", Answer: "Sim, existem plataformas que pagam por assistir vídeos, mas os ganhos são baixos. Considere métodos mais rentáveis como freelancing ou criação de conteúdo.", Category: "ganhar-dinheiro"},
}

var blogFixtures = []blog.CreateRequest{
	{
		Title:   "5 Tendências de Tecnologia para 2025",
		Slug:    "tendencias-tecnologia-2025",
		Excerpt: "Descubra as principais tendências tecnológicas que vão dominar o próximo ano",
		Content: `# 5 Tendências de Tecnologia para 2025

## 1. Inteligência Artificial Generativa
A IA está cada vez mais presente no dia a dia, desde assistentes virtuais até criação de conteúdo.

## 2. Computação Quântica
Empresas como IBM e Google estão avançando rapidamente nesta área.

## 3. Internet das Coisas (IoT)
Casas inteligentes e cidades conectadas são o futuro.

## 4. Realidade Aumentada
AR vai transformar como compramos e aprendemos.

## 5. Blockchain e Web3
Além das criptomoedas, a tecnologia blockchain tem várias aplicações.

Fique atento a essas tendências para não ficar para trás!`,
		ImageURL: "https://images.unsplash.com/photo-1519389950473-47ba0277781c?w=800",
		Tags:     []string{"tecnologia", "tendências", "2025", "ia"},
	},
}
