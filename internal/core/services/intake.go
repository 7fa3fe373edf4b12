package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pillziy/pillziy-cli/internal/core/domain"
	"github.com/pillziy/pillziy-cli/internal/core/ports/driven"
	"github.com/pillziy/pillziy-cli/internal/core/ports/driving"
	"github.com/pillziy/pillziy-cli/internal/imaging"
	"github.com/pillziy/pillziy-cli/internal/logger"
)

// Ensure IntakeService implements the interface.
var _ driving.IntakeService = (*IntakeService)(nil)

// Config keys for intake behavior.
const (
	keyIntakeLanguage   = "intake.language"
	keyFallbackName     = "intake.fallback_name"
	keyFallbackDosage   = "intake.fallback_dosage"
	keyDefaultFrequency = "intake.default_frequency"
)

// Fallbacks applied when the user confirms with empty fields.
// Overridable through the config keys above.
const (
	defaultLanguage       = "eng"
	defaultFallbackName   = "TYLENOL 500"
	defaultFallbackDosage = "500mg"
)

// IntakeService turns a captured prescription-label image into a
// confirmed medication record with a human-in-the-loop confirmation
// step. One scan runs at a time; nothing touches the repository until
// Confirm succeeds.
type IntakeService struct {
	camera     driven.Camera
	recognizer driven.TextRecognizer
	repo       driving.MedicationRepository
	config     driven.ConfigStore

	mu       sync.Mutex
	inFlight context.CancelFunc
	pending  *domain.IntakeDraft
	gen      uint64
}

// NewIntakeService creates the intake pipeline. config may be nil, in
// which case the built-in defaults apply.
func NewIntakeService(
	camera driven.Camera,
	recognizer driven.TextRecognizer,
	repo driving.MedicationRepository,
	config driven.ConfigStore,
) *IntakeService {
	return &IntakeService{
		camera:     camera,
		recognizer: recognizer,
		repo:       repo,
		config:     config,
	}
}

// Start begins capture and recognition in a background goroutine.
// Exactly one result is delivered on the returned channel.
func (s *IntakeService) Start(ctx context.Context) (<-chan driving.IntakeResult, error) {
	s.mu.Lock()
	if s.inFlight != nil || s.pending != nil {
		s.mu.Unlock()
		return nil, domain.ErrIntakeInProgress
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.inFlight = cancel
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	results := make(chan driving.IntakeResult, 1)
	go s.run(runCtx, gen, results)
	return results, nil
}

func (s *IntakeService) run(ctx context.Context, gen uint64, results chan<- driving.IntakeResult) {
	draft, err := s.capture(ctx)

	s.mu.Lock()
	if s.gen != gen {
		// Cancelled (and possibly restarted) while this run was in
		// flight; its result must not become the pending draft.
		s.mu.Unlock()
		results <- driving.IntakeResult{Err: domain.ErrCaptureCancelled}
		return
	}
	if s.inFlight != nil {
		s.inFlight()
		s.inFlight = nil
	}
	if err == nil {
		s.pending = draft
	}
	s.mu.Unlock()

	if err != nil {
		results <- driving.IntakeResult{Err: err}
		return
	}
	results <- driving.IntakeResult{Draft: *draft}
}

// capture runs the camera and the recognizer. Camera failure aborts;
// recognition failure degrades to a draft with no extracted text.
func (s *IntakeService) capture(ctx context.Context) (*domain.IntakeDraft, error) {
	frame, err := s.camera.Capture(ctx)
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}

	upright := imaging.Normalize(frame.Pixels, frame.Orientation)
	opts := driven.RecognitionOptions{
		Accurate:           true,
		LanguageCorrection: true,
		Language:           s.configString(keyIntakeLanguage, defaultLanguage),
	}

	lines, err := s.recognizer.Recognize(ctx, upright, opts)
	if err != nil {
		logger.Debug("recognition failed, continuing without text: %v", err)
		lines = nil
	}
	text := strings.Join(lines, "\n")

	return &domain.IntakeDraft{
		CandidateName: domain.CandidateName(text),
		ExtractedText: text,
		Capture: &domain.CapturedImage{
			Pixels:      upright,
			Orientation: domain.OrientationUp,
		},
	}, nil
}

// Confirm commits the pending draft. Empty name and dosage fall back to
// configured literals; an empty frequency falls back to the default
// preset. The capture, when present, is stored as a compressed JPEG.
func (s *IntakeService) Confirm(ctx context.Context, form driving.IntakeForm) (domain.Medication, error) {
	s.mu.Lock()
	draft := s.pending
	s.mu.Unlock()

	if draft == nil {
		return domain.Medication{}, domain.ErrIntakeNotActive
	}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		name = s.configString(keyFallbackName, defaultFallbackName)
	}
	dosage := strings.TrimSpace(form.Dosage)
	if dosage == "" {
		dosage = s.configString(keyFallbackDosage, defaultFallbackDosage)
	}
	frequency := form.Frequency
	if frequency == "" {
		frequency = domain.Frequency(s.configString(keyDefaultFrequency, domain.FrequencyOnceDaily.String()))
	}

	var label []byte
	if draft.Capture != nil && draft.Capture.Pixels != nil {
		encoded, err := imaging.EncodeJPEG(draft.Capture.Pixels)
		if err != nil {
			logger.Warn("encoding label image, storing record without it: %v", err)
		} else {
			label = encoded
		}
	}

	med, err := s.repo.Add(ctx, domain.Medication{
		Name:       name,
		Dosage:     dosage,
		Frequency:  frequency,
		LabelImage: label,
	})
	if err != nil {
		return domain.Medication{}, fmt.Errorf("add medication: %w", err)
	}

	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
	return med, nil
}

// Cancel aborts an in-flight scan and drops any pending draft.
func (s *IntakeService) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight != nil {
		s.inFlight()
		s.inFlight = nil
	}
	s.pending = nil
	s.gen++
}

// Active reports whether a scan is running or a draft awaits confirmation.
func (s *IntakeService) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight != nil || s.pending != nil
}

func (s *IntakeService) configString(key, fallback string) string {
	if s.config == nil {
		return fallback
	}
	if v := s.config.GetString(key); v != "" {
		return v
	}
	return fallback
}
