// internal/services/preferences_service.go
package services

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/shelflife/internal/models"
)

var ErrInvalidTheme = errors.New("unknown color theme")

type PreferencesRepository interface {
	LoadPreferences() (*models.Preferences, error)
	SavePreferences(prefs *models.Preferences) error
}

// PreferencesService is the single owner of user preferences; other
// components get copies via Get.
type PreferencesService struct {
	mu    sync.RWMutex
	prefs models.Preferences
	repo  PreferencesRepository
}

type SetupRequest struct {
	UserName      string            `json:"user_name" validate:"max=100"`
	ColorTheme    models.ColorTheme `json:"color_theme" validate:"omitempty,color_theme"`
	Notifications *bool             `json:"notifications,omitempty"`
}

func NewPreferencesService(repo PreferencesRepository, defaults models.Preferences) *PreferencesService {
	return &PreferencesService{repo: repo, prefs: defaults}
}

// Load reads stored preferences, keeping defaults when none were saved yet.
func (s *PreferencesService) Load() error {
	if s.repo == nil {
		return nil
	}

	stored, err := s.repo.LoadPreferences()
	if err != nil {
		return errors.Wrap(err, "failed to load preferences")
	}
	if stored == nil {
		return nil
	}

	s.mu.Lock()
	s.prefs = *stored
	s.mu.Unlock()
	return nil
}

func (s *PreferencesService) Get() models.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

func (s *PreferencesService) UserName() string {
	return s.Get().UserName
}

// NextScreen decides where the app goes after the splash screen.
func (s *PreferencesService) NextScreen() models.Screen {
	prefs := s.Get()
	switch {
	case prefs.FirstTime:
		return models.ScreenOnboarding
	case prefs.SetupCompleted:
		return models.ScreenProducts
	default:
		return models.ScreenSetup
	}
}

func (s *PreferencesService) CompleteOnboarding() (models.Preferences, error) {
	return s.update(func(p *models.Preferences) error {
		p.FirstTime = false
		return nil
	})
}

// SaveSetup applies the setup screen. A blank name is stored as "User".
func (s *PreferencesService) SaveSetup(req SetupRequest) (models.Preferences, error) {
	return s.update(func(p *models.Preferences) error {
		name := strings.TrimSpace(req.UserName)
		if name == "" {
			name = models.DefaultUserName
		}
		p.UserName = name

		theme := req.ColorTheme
		if theme == "" {
			theme = models.ColorThemeWhite
		}
		if !theme.Valid() {
			return errors.Wrapf(ErrInvalidTheme, "%q", theme)
		}
		p.ColorTheme = theme

		if req.Notifications != nil {
			p.Notifications = *req.Notifications
		}
		p.FirstTime = false
		p.SetupCompleted = true
		return nil
	})
}

func (s *PreferencesService) update(apply func(p *models.Preferences) error) (models.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.prefs
	if err := apply(&next); err != nil {
		return s.prefs, err
	}

	if s.repo != nil {
		if err := s.repo.SavePreferences(&next); err != nil {
			return s.prefs, errors.Wrap(err, "failed to save preferences")
		}
	}
	s.prefs = next

	logrus.WithFields(logrus.Fields{
		"user_name":       next.UserName,
		"theme":           next.ColorTheme,
		"setup_completed": next.SetupCompleted,
	}).Info("Preferences updated")
	return next, nil
}
