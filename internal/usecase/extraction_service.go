package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/attriflow/backend/internal/domain"
	"github.com/attriflow/backend/internal/infrastructure/completion"
	"github.com/attriflow/backend/internal/templates"
)

// ExtractionServiceConfig holds configuration for the extraction service
type ExtractionServiceConfig struct {
	CompletionTimeout  time.Duration
	CacheTTL           time.Duration
	Detection          DetectionConfig
	EnableDebugLogging bool
}

// ExtractionService runs the full extraction pipeline: OCR normalization,
// manufacturer detection, the rule-based extraction passes in their fixed
// order, deduplication, and finally the AI-derived attributes. The rule
// passes are pure CPU-bound functions; only the completion call does I/O,
// and its failure never fails the request.
type ExtractionService struct {
	detector           *ManufacturerDetector
	templateExtractor  *TemplateExtractor
	tabularExtractor   *TabularExtractor
	technicalExtractor *TechnicalExtractor
	completionClient   domain.CompletionClient
	cache              domain.CacheRepository
	completionTimeout  time.Duration
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewExtractionService wires the extraction pipeline. completionClient may
// be nil, in which case the pipeline runs rule-based extraction only.
func NewExtractionService(
	registry *templates.Registry,
	completionClient domain.CompletionClient,
	cache domain.CacheRepository,
	config ExtractionServiceConfig,
) *ExtractionService {
	completionTimeout := config.CompletionTimeout
	if completionTimeout == 0 {
		completionTimeout = 30 * time.Second
	}
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}
	detection := config.Detection
	if detection.MinConfidence <= 0 {
		detection = DefaultDetectionConfig()
	}
	detection.EnableDebugLogging = config.EnableDebugLogging

	return &ExtractionService{
		detector:           NewManufacturerDetector(registry, detection),
		templateExtractor:  NewTemplateExtractor(registry, config.EnableDebugLogging),
		tabularExtractor:   NewTabularExtractor(),
		technicalExtractor: NewTechnicalExtractor(),
		completionClient:   completionClient,
		cache:              cache,
		completionTimeout:  completionTimeout,
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ExtractAttributes runs the pipeline for one request.
// The returned result always carries the normalized text and a (possibly
// empty) attribute list; only a missing input text is an error.
func (s *ExtractionService) ExtractAttributes(ctx context.Context, request *domain.ExtractionRequest) (*domain.ExtractionResult, error) {
	if request == nil || request.Text == "" {
		return nil, domain.ErrMissingText
	}

	normalized := NormalizeOCRText(request.Text)
	extractionCtx := domain.NewExtractionContext(request.Division, request.Category)

	manufacturer := s.detector.Detect(normalized)
	if manufacturer == "" {
		manufacturer = s.detector.PostProcess(normalized, request.Division, request.Category)
		if s.enableDebugLogging && manufacturer != "" {
			log.Printf("[DETECT] post-processor resolved manufacturer %q", manufacturer)
		}
	}

	// Fixed pass order: template extraction first, then tabular/suffix, then
	// technical data. First-seen wins at dedup time, so the order is the
	// precedence.
	attrs := s.templateExtractor.Extract(normalized, manufacturer, request.Division, request.Category, extractionCtx.CategoryType)
	attrs = append(attrs, s.tabularExtractor.Extract(normalized)...)
	attrs = append(attrs, s.technicalExtractor.Extract(normalized)...)
	attrs = DeduplicateAttributes(attrs)

	attrs = s.appendCompletionAttributes(ctx, normalized, manufacturer, request, attrs)

	template := s.templateExtractor.Resolve(manufacturer, extractionCtx.CategoryType)

	return &domain.ExtractionResult{
		Attributes:   attrs,
		RawText:      normalized,
		Template:     template.ManufacturerName,
		CategoryType: string(extractionCtx.CategoryType),
	}, nil
}

// appendCompletionAttributes asks the completion service for additional
// attributes and merges them behind the rule-based results. A single attempt
// with a hard timeout; any failure degrades to the rule-based attributes.
func (s *ExtractionService) appendCompletionAttributes(
	ctx context.Context,
	normalized, manufacturer string,
	request *domain.ExtractionRequest,
	attrs []domain.Attribute,
) []domain.Attribute {
	if s.completionClient == nil {
		return attrs
	}

	prompt := completion.BuildExtractionPrompt(normalized, request.Division, request.Category, manufacturer)

	response, err := s.completeWithCache(ctx, prompt)
	if err != nil {
		log.Printf("[AI] completion failed, continuing without AI attributes: %v", err)
		return attrs
	}

	aiAttrs := ParseCompletionAttributes(response)
	if s.enableDebugLogging {
		log.Printf("[AI] parsed %d attributes from completion response", len(aiAttrs))
	}

	return DeduplicateAttributes(append(attrs, aiAttrs...))
}

// completeWithCache memoizes completion responses by prompt hash. Extracted
// attributes themselves are never cached or persisted.
func (s *ExtractionService) completeWithCache(ctx context.Context, prompt string) (string, error) {
	key := completionCacheKey(prompt)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			if s.enableDebugLogging {
				log.Printf("[AI] completion cache hit")
			}
			return cached, nil
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.completionTimeout)
	defer cancel()

	response, err := s.completionClient.Complete(callCtx, prompt)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, response, s.cacheTTL); err != nil {
			log.Printf("[AI] failed to cache completion response: %v", err)
		}
	}

	return response, nil
}

func completionCacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("completion:%s", hex.EncodeToString(sum[:]))
}

// Chat relays a user message about previously extracted attributes to the
// completion service.
func (s *ExtractionService) Chat(ctx context.Context, request *domain.ChatRequest) (string, error) {
	if request == nil || request.Message == "" {
		return "", domain.ErrInvalidRequest
	}
	if s.completionClient == nil {
		return "", domain.ErrCompletionFailure
	}

	prompt := completion.BuildChatPrompt(request.Message, request.Attributes, request.Context)

	callCtx, cancel := context.WithTimeout(ctx, s.completionTimeout)
	defer cancel()

	return s.completionClient.Complete(callCtx, prompt)
}

// UpdateAttributes asks the completion service to revise the attribute list
// per the user's request. When the response yields nothing parseable, the
// current attributes are returned unchanged.
func (s *ExtractionService) UpdateAttributes(ctx context.Context, request *domain.UpdateAttributesRequest) ([]domain.Attribute, error) {
	if request == nil || request.Message == "" {
		return nil, domain.ErrInvalidRequest
	}
	if s.completionClient == nil {
		return nil, domain.ErrCompletionFailure
	}

	prompt := completion.BuildUpdatePrompt(request.Message, request.Attributes, request.Division, request.Category)

	callCtx, cancel := context.WithTimeout(ctx, s.completionTimeout)
	defer cancel()

	response, err := s.completionClient.Complete(callCtx, prompt)
	if err != nil {
		return nil, err
	}

	updated := ParseResponseAttributes(response, request.Division, request.Category)
	if len(updated) == 0 {
		return request.Attributes, nil
	}
	return DeduplicateAttributes(updated), nil
}
