package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stylematch/stylematch-backend/config"
	"google.golang.org/api/option"
)

// styleAdvicePrompt frames every outfit-advice request sent to Gemini.
const styleAdvicePrompt = `You are StyleMatch, a knowledgeable and inclusive fashion recommendation assistant. Your task is to suggest 3 specific outfit combinations.

**IMPORTANT SYSTEM LIMITATIONS:**
- YOU CANNOT GENERATE OR PROVIDE IMAGES
- YOU CAN ONLY ACCEPT TEXT REQUESTS
- IF USER ASKS FOR IMAGES, POLITELY EXPLAIN YOU CAN ONLY PROVIDE TEXT DESCRIPTIONS

**RULES:**
1. **GENDER-NEUTRAL APPROACH:** Recommend items based on style, occasion, and fit preferences. Use inclusive language like "outfit", "garment", or "piece". Avoid gendered terms unless specifically requested.

2. **ANALYZE THE USER'S REQUEST:** They might be asking for:
   - Occasion-based styling (e.g., "job interview", "beach vacation")
   - Specific item styling (e.g., "how to wear white tops")
   - Style guidance (e.g., "streetwear looks")
   - Fit advice (e.g., "petite options", "comfortable shoes")

3. **BE SPECIFIC AND DESCRIPTIVE:** Describe clothing items in detail including:
   - Garment types (e.g., button-up shirt, A-line dress, slim-fit trousers)
   - Materials (e.g., cotton, linen, denim, silk)
   - Colors and patterns
   - Styles and aesthetics

4. **FORMAT:** Use clear bullet points with brief explanations of why each outfit works.


**USER'S REQUEST:**
%s

**RECOMMENDATIONS:**
`

// DefaultStyleAdvice is returned to the user whenever the model call fails.
// Upstream failures are never surfaced raw.
const DefaultStyleAdvice = "Our styling assistant is taking a short break. " +
	"A safe bet for most occasions: pair a well-fitted neutral top (white, black or beige) " +
	"with dark bottoms and simple footwear, and add one accent piece in a color you love."

// GenerateStyleAdvice sends the user's styling request to Gemini and returns
// the model's free-form recommendation text.
func GenerateStyleAdvice(ctx context.Context, userMessage string) (string, error) {
	if config.GeminiAPIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.GeminiAPIKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %v", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-flash")
	model.SetTemperature(0.9)

	prompt := fmt.Sprintf(styleAdvicePrompt, userMessage)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %v", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	advice := strings.TrimSpace(sb.String())
	if advice == "" {
		return "", fmt.Errorf("unexpected response format (empty content)")
	}

	return advice, nil
}
