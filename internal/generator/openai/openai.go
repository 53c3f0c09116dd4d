// Package openai is a content provider backed by an OpenAI-compatible
// chat completion API.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/nexus-social/nexus/internal/entities"
	"github.com/nexus-social/nexus/internal/generator"
)

var log = logrus.WithField("layer", "generator").WithField("package", "openai")

const systemPrompt = "You are a content engine for a professional social network. " +
	"You answer with raw JSON only, no prose and no code fences."

const promptTemplate = "Generate %d realistic social media posts for a platform similar to Instagram " +
	"but for professionals (Developers, Actors, Musicians). Include a variety of labels. " +
	"Respond with a JSON array of objects with fields: " +
	`"name" (string), "handle" (string), "label" (one of %s), "caption" (string), "likes" (non-negative integer).`

type client interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type gen struct {
	c     client
	model string
}

type seedDTO struct {
	Name    string `json:"name"`
	Handle  string `json:"handle"`
	Label   string `json:"label"`
	Caption string `json:"caption"`
	Likes   int    `json:"likes"`
}

// New creates a generator which requests post seeds from the given model.
func New(apiKey, model string) generator.Generator {
	return gen{
		c:     openai.NewClient(apiKey),
		model: model,
	}
}

func (g gen) GeneratePosts(ctx context.Context, count int) ([]generator.PostSeed, error) {
	labels := make([]string, 0, len(entities.Labels()))
	for _, l := range entities.Labels() {
		labels = append(labels, string(l))
	}

	resp, err := g.c.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(promptTemplate, count, strings.Join(labels, ", "))},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	seeds, err := parseSeeds(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse chat completion: %w", err)
	}

	if len(seeds) > count {
		seeds = seeds[:count]
	}

	log.WithField("count", len(seeds)).Debug("generated post seeds")

	return seeds, nil
}

// parseSeeds decodes a JSON array of seed records. Models occasionally wrap
// the payload in markdown fences despite the system prompt, so fences are
// stripped before decoding. Items with an unknown label are coerced to
// Everyone, items without a handle are dropped.
func parseSeeds(s string) ([]generator.PostSeed, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	var dto []seedDTO
	if err := json.Unmarshal([]byte(s), &dto); err != nil {
		return nil, fmt.Errorf("failed to unmarshal: %w", err)
	}

	out := make([]generator.PostSeed, 0, len(dto))
	for _, v := range dto {
		if v.Handle == "" {
			continue
		}

		label := entities.UserLabel(v.Label)
		if !label.IsValid() {
			label = entities.LabelEveryone
		}

		likes := v.Likes
		if likes < 0 {
			likes = 0
		}

		out = append(out, generator.PostSeed{
			Name:    v.Name,
			Handle:  v.Handle,
			Label:   label,
			Caption: v.Caption,
			Likes:   likes,
		})
	}

	return out, nil
}
