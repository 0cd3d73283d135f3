package service

import (
	"context"
	"strings"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// ProfileService handles developer profiles and their experience and
// education entries.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// UpsertProfileInput mirrors the flat request body: social links arrive as
// top-level keys and are folded into the embedded struct here.
type UpsertProfileInput struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills"`
	Youtube        string `json:"youtube"`
	Facebook       string `json:"facebook"`
	Twitter        string `json:"twitter"`
	Instagram      string `json:"instagram"`
	LinkedIn       string `json:"linkedin"`
}

type ExperienceInput struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type EducationInput struct {
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

// NormalizeSkills splits a comma-separated skills string into an uppercased
// list, preserving order and duplicates. Empty segments are dropped.
func NormalizeSkills(skills string) []string {
	var out []string
	for _, s := range strings.Split(skills, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out
}

// UpsertProfile creates the caller's profile or updates it in place.
// Top-level fields merge sparsely (empty input keeps the stored value) while
// the social links are rebuilt wholesale from the request on every call.
func (s *ProfileService) UpsertProfile(ctx context.Context, userID uint, in UpsertProfileInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	social := models.SocialLinks{
		Youtube:   in.Youtube,
		Facebook:  in.Facebook,
		Twitter:   in.Twitter,
		Instagram: in.Instagram,
		LinkedIn:  in.LinkedIn,
	}

	if profile == nil {
		var msgs []string
		if in.Status == "" {
			msgs = append(msgs, "Status is required")
		}
		if strings.TrimSpace(in.Skills) == "" {
			msgs = append(msgs, "Skills is required")
		}
		if len(msgs) > 0 {
			return nil, models.NewValidationErrors(msgs)
		}

		profile = &models.Profile{
			UserID:         userID,
			Company:        in.Company,
			Website:        in.Website,
			Location:       in.Location,
			Bio:            in.Bio,
			Status:         in.Status,
			GithubUsername: in.GithubUsername,
			Skills:         NormalizeSkills(in.Skills),
			Social:         social,
		}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
		return s.profileRepo.GetByUserID(ctx, userID)
	}

	if in.Company != "" {
		profile.Company = in.Company
	}
	if in.Website != "" {
		profile.Website = in.Website
	}
	if in.Location != "" {
		profile.Location = in.Location
	}
	if in.Bio != "" {
		profile.Bio = in.Bio
	}
	if in.Status != "" {
		profile.Status = in.Status
	}
	if in.GithubUsername != "" {
		profile.GithubUsername = in.GithubUsername
	}
	if strings.TrimSpace(in.Skills) != "" {
		profile.Skills = NormalizeSkills(in.Skills)
	}
	profile.Social = social

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// GetMyProfile returns the caller's profile, 404 when they have none.
func (s *ProfileService) GetMyProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("Profile")
	}
	return profile, nil
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.GetMyProfile(ctx, userID)
}

func (s *ProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

func (s *ProfileService) AddExperience(ctx context.Context, userID uint, in ExperienceInput) (*models.Profile, error) {
	profile, err := s.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	var msgs []string
	if in.Title == "" {
		msgs = append(msgs, "Title is required")
	}
	if in.Company == "" {
		msgs = append(msgs, "Company is required")
	}
	if in.From.IsZero() {
		msgs = append(msgs, "From date is required")
	}
	if len(msgs) > 0 {
		return nil, models.NewValidationErrors(msgs)
	}

	entry := &models.Experience{
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, profile, entry); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// RemoveExperience deletes one of the caller's experience entries. Removing
// an entry that does not exist, or that belongs to someone else, succeeds
// without changing anything.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, entryID uint) (*models.Profile, error) {
	profile, err := s.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveExperience(ctx, profile, entryID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *ProfileService) AddEducation(ctx context.Context, userID uint, in EducationInput) (*models.Profile, error) {
	profile, err := s.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	var msgs []string
	if in.School == "" {
		msgs = append(msgs, "School is required")
	}
	if in.Degree == "" {
		msgs = append(msgs, "Degree is required")
	}
	if in.FieldOfStudy == "" {
		msgs = append(msgs, "Field of study is required")
	}
	if in.From.IsZero() {
		msgs = append(msgs, "From date is required")
	}
	if len(msgs) > 0 {
		return nil, models.NewValidationErrors(msgs)
	}

	entry := &models.Education{
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, profile, entry); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *ProfileService) RemoveEducation(ctx context.Context, userID, entryID uint) (*models.Profile, error) {
	profile, err := s.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveEducation(ctx, profile, entryID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// DeleteAccount removes the caller's profile and user record. Their posts
// stay behind with the denormalized author fields still attached.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

func (s *ProfileService) requireProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("Profile")
	}
	return profile, nil
}
