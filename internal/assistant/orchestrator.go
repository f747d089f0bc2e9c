package assistant

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"eventro-backend/internal/docgen"
	"eventro-backend/internal/types"
	"eventro-backend/internal/upload"
)

// Request is one inbound chat turn. Upload is nil when no image was attached.
// The staged upload is owned by the caller; Handle only reads it.
type Request struct {
	Message string
	Upload  *upload.StagedFile
}

// Orchestrator runs the chat pipeline: completion, classification, then
// conditionally document synthesis and image generation. All steps are
// sequential and all-or-nothing: any failing step aborts the request, even if
// earlier steps already produced output.
type Orchestrator struct {
	completions CompletionClient
	images      ImageClient
	persona     PersonaSpec
	docs        *docgen.Writer
}

func NewOrchestrator(completions CompletionClient, images ImageClient, persona PersonaSpec, docs *docgen.Writer) *Orchestrator {
	return &Orchestrator{
		completions: completions,
		images:      images,
		persona:     persona,
		docs:        docs,
	}
}

func (o *Orchestrator) Handle(ctx context.Context, req Request) (*types.ChatResponse, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: o.persona.System},
	}
	if req.Upload != nil {
		uri, err := req.Upload.DataURI()
		if err != nil {
			return nil, err
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{
					Type: openai.ChatMessagePartTypeText,
					Text: req.Message + "\n\n" + o.persona.VisionInstruction,
				},
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: uri},
				},
			},
		})
	} else {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: req.Message,
		})
	}

	text, err := o.completions.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}

	decision := Classify(req.Message, text, req.Upload != nil)
	resp := &types.ChatResponse{Text: text}

	if decision.WantsDocument {
		name, err := o.docs.Write(docgen.Lines(text))
		if err != nil {
			return nil, err
		}
		u := "/downloads/" + name
		resp.DocxURL = &u
	}

	if decision.WantsImage {
		prompt := decision.ImagePrompt
		if prompt == "" {
			prompt = req.Message
		}
		url, err := o.images.GenerateImage(ctx, prompt)
		if err != nil {
			return nil, err
		}
		resp.ImageURL = &url
	}

	return resp, nil
}
