package service

import (
	"context"
	"errors"

	"anoa.com/quarterdirectory/internal/dto"
	"anoa.com/quarterdirectory/internal/model"
	"anoa.com/quarterdirectory/internal/repository"
	"anoa.com/quarterdirectory/pkg/apperror"
	"gorm.io/gorm"
)

const (
	// DirectoryPageSize is the fixed listing page size.
	DirectoryPageSize = 50

	// pinThreshold is the page position (zero-based) at which the viewer's
	// own row gets prepended. Not being on the page at all counts the same
	// as a low position.
	pinThreshold = 9

	// userSearchLimit caps how many candidate ids a name search yields.
	userSearchLimit = 20
)

// DirectoryListRequest carries one listing query. ViewerID is 0 for
// anonymous callers.
type DirectoryListRequest struct {
	PeriodKey string
	Order     string
	Ascending bool
	Page      int
	Name      string
	Username  string
	ViewerID  int64
}

// DirectoryService answers ranked, filtered, paginated queries against the
// snapshot table. It never writes.
type DirectoryService interface {
	List(ctx context.Context, req DirectoryListRequest) (*dto.DirectoryListResult, error)
}

type directoryService struct {
	repo     repository.DirectoryRepository
	userRepo repository.UserRepository
	search   UserSearch
	settings SiteSettings
}

func NewDirectoryService(repo repository.DirectoryRepository, userRepo repository.UserRepository, search UserSearch, settings SiteSettings) DirectoryService {
	return &directoryService{
		repo:     repo,
		userRepo: userRepo,
		search:   search,
		settings: settings,
	}
}

func (s *directoryService) List(ctx context.Context, req DirectoryListRequest) (*dto.DirectoryListResult, error) {
	if !s.settings.DirectoryEnabled(ctx) {
		return nil, apperror.ErrDirectoryDisabled
	}

	period, ok := model.PeriodFromKey(req.PeriodKey)
	if !ok {
		return nil, apperror.ErrInvalidPeriod
	}

	// Unrecognized order keys are ignored; the default ordering stands.
	order := "total_participation"
	for _, heading := range model.Headings() {
		if req.Order == heading {
			order = req.Order
			break
		}
	}

	page := req.Page
	if page < 0 {
		page = 0
	}

	userIDs, forcedEmpty, err := s.resolveFilters(ctx, period, req)
	if err != nil {
		return nil, err
	}
	if forcedEmpty {
		return &dto.DirectoryListResult{Items: []dto.DirectoryItemResponse{}}, nil
	}

	items, total, err := s.repo.ListPage(ctx, repository.ListQuery{
		Period:    period,
		Order:     order,
		Ascending: req.Ascending,
		Page:      page,
		Limit:     DirectoryPageSize,
		UserIDs:   userIDs,
	})
	if err != nil {
		return nil, err
	}

	items, err = s.pinViewer(ctx, period, page, req.ViewerID, items)
	if err != nil {
		return nil, err
	}

	result := &dto.DirectoryListResult{
		Items:     make([]dto.DirectoryItemResponse, 0, len(items)),
		TotalRows: total,
	}
	for _, item := range items {
		result.Items = append(result.Items, toItemResponse(item))
	}

	return result, nil
}

// resolveFilters turns the name and username filters into a candidate id
// set. nil means unconstrained; forcedEmpty short-circuits the query when a
// filter matched nobody (which is not an error).
func (s *directoryService) resolveFilters(ctx context.Context, period model.PeriodType, req DirectoryListRequest) (userIDs []int64, forcedEmpty bool, err error) {
	if req.Name != "" {
		ids, err := s.search.Search(ctx, req.Name, userSearchLimit)
		if err != nil {
			return nil, false, err
		}
		if len(ids) == 0 {
			return nil, true, nil
		}

		// Add the viewer so a searching user sees their own row next to
		// matching peers, but only when at least one peer is in the result.
		if req.ViewerID > 0 && !containsID(ids, req.ViewerID) {
			matches, err := s.repo.CountByUsers(ctx, period, ids)
			if err != nil {
				return nil, false, err
			}
			if matches > 0 {
				ids = append(ids, req.ViewerID)
			}
		}
		userIDs = ids
	}

	if req.Username != "" {
		id, err := s.userRepo.FindIDByUsername(ctx, req.Username)
		if err != nil {
			return nil, false, err
		}
		switch {
		case id == 0:
			return nil, true, nil
		case userIDs == nil:
			userIDs = []int64{id}
		case containsID(userIDs, id):
			userIDs = []int64{id}
		default:
			return nil, true, nil
		}
	}

	return userIDs, false, nil
}

// pinViewer prepends the viewer's own row on the first page when they are
// not already near the top. The page may end up one item over the page
// size; the reported total is deliberately left untouched.
func (s *directoryService) pinViewer(ctx context.Context, period model.PeriodType, page int, viewerID int64, items []model.DirectoryItem) ([]model.DirectoryItem, error) {
	if page != 0 || viewerID <= 0 || len(items) == 0 {
		return items, nil
	}

	position := -1
	for i, item := range items {
		if item.UserID == viewerID {
			position = i
			break
		}
	}
	if position >= 0 && position < pinThreshold {
		return items, nil
	}

	own, err := s.repo.FindItem(ctx, period, viewerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return items, nil
	}
	if err != nil {
		return nil, err
	}

	return append([]model.DirectoryItem{*own}, items...), nil
}

func toItemResponse(item model.DirectoryItem) dto.DirectoryItemResponse {
	resp := dto.DirectoryItemResponse{
		ID: item.UserID,
		User: dto.DirectoryUserResponse{
			Username:  item.User.Username,
			Name:      item.User.Name,
			AvatarURL: item.User.AvatarURL,
		},
		TopicCount:         item.TopicCount,
		PostCount:          item.PostCount,
		TotalParticipation: item.TotalParticipation,
	}

	if item.PeriodType == model.FineGrainedPeriod {
		timeRead := ageWords(item.UserStat.TimeRead)
		resp.TimeRead = &timeRead
	}

	return resp
}

func containsID(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
