package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/domain/entity"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/resilience/circuitbreaker"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/resilience/retry"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/utils/text"
)

// maxDescriptionChars truncates catalog descriptions before prompting to
// stay clear of the model's context window.
const maxDescriptionChars = 4000

// OpenAI generates movie blurbs via OpenAI's chat completion API, with
// circuit breaker and retry for reliability.
type OpenAI struct {
	client          *openai.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          *Config
	metricsRecorder BlurbMetricsRecorder
}

// NewOpenAI creates an OpenAI blurb generator with the given API key.
func NewOpenAI(apiKey string, config *Config) *OpenAI {
	slog.Info("initialized openai blurb generator",
		slog.Int("character_limit", config.CharacterLimit),
		slog.String("model", config.Model))

	return &OpenAI{
		client:          openai.NewClient(apiKey),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		config:          config,
		metricsRecorder: NewPrometheusBlurbMetrics(),
	}
}

// Generate produces a one-paragraph pitch for the movie. The caller treats
// a failure as "no blurb"; the detail view never fails because of this.
func (o *OpenAI) Generate(ctx context.Context, movie *entity.MovieDetail) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doGenerate(ctx, movie)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("openai api unavailable: circuit breaker open")
			}
			return err
		}
		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		return "", fmt.Errorf("blurb generation failed after retries: %w", retryErr)
	}

	return result, nil
}

// buildPrompt constructs the generation prompt from the movie record.
func (o *OpenAI) buildPrompt(movie *entity.MovieDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "In at most %d characters, write one enthusiastic paragraph on why someone should watch this movie tonight. No spoilers, no lists, no headings.\n\n", o.config.CharacterLimit)
	fmt.Fprintf(&b, "Title: %s (%d)\n", movie.DisplayName(), movie.Year)
	if len(movie.Genres) > 0 {
		fmt.Fprintf(&b, "Genres: %s\n", strings.Join(movie.Genres, ", "))
	}
	if movie.Rating != nil {
		fmt.Fprintf(&b, "Rating: %.1f\n", *movie.Rating)
	}

	description := movie.Description
	if len(description) > maxDescriptionChars {
		description = description[:maxDescriptionChars] + "..."
	}
	if description != "" {
		fmt.Fprintf(&b, "Description: %s\n", description)
	}
	return b.String()
}

// doGenerate performs the API call without retry or circuit breaker.
func (o *OpenAI) doGenerate(ctx context.Context, movie *entity.MovieDetail) (string, error) {
	prompt := o.buildPrompt(movie)
	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.config.Model,
		MaxTokens: o.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{{
			Role:    "system",
			Content: prompt,
		}},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "blurb generation failed",
			slog.String("movie_id", movie.ID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned empty response")
	}

	blurb := strings.TrimSpace(resp.Choices[0].Message.Content)
	blurbLength := text.CountRunes(blurb)
	withinLimit := blurbLength <= o.config.CharacterLimit

	slog.InfoContext(ctx, "blurb generated",
		slog.String("movie_id", movie.ID),
		slog.Int("length", blurbLength),
		slog.Bool("within_limit", withinLimit),
		slog.Duration("duration", duration))

	o.metricsRecorder.RecordLength(blurbLength)
	o.metricsRecorder.RecordDuration(duration)
	o.metricsRecorder.RecordCompliance(withinLimit)
	if !withinLimit {
		o.metricsRecorder.RecordLimitExceeded()
	}

	return blurb, nil
}
