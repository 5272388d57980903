package router

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/DjordjeVuckovic/news-scraper/internal/apperr"
	"github.com/DjordjeVuckovic/news-scraper/internal/config"
	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/DjordjeVuckovic/news-scraper/internal/service"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage"
	"github.com/DjordjeVuckovic/news-scraper/pkg/pagination"
	"github.com/labstack/echo/v4"
)

// NewsService is what the router needs from the collection service.
type NewsService interface {
	Sources() []config.SourceConfig
	Refresh(ctx context.Context) (*service.RefreshResult, error)
	LastRefresh() *service.RefreshResult
	List(ctx context.Context, q storage.ListQuery) ([]domain.News, int64, error)
}

type NewsRouter struct {
	e       *echo.Echo
	service NewsService
}

func NewNewsRouter(e *echo.Echo, service NewsService) *NewsRouter {
	return &NewsRouter{
		e:       e,
		service: service,
	}
}

func (r *NewsRouter) Bind() {
	r.e.GET("/news", r.listHandler)
	r.e.POST("/news/refresh", r.refreshHandler)
	r.e.GET("/sources", r.sourcesHandler)
}

type listRequest struct {
	pagination.OffsetRequest
	Source string `query:"source"`
}

// listHandler godoc
// @Summary List collected news
// @Description Returns collected news in pages. Optionally filtered by source id.
// @Tags news
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param size query int false "Page size"
// @Param source query string false "Source id, e.g. rt"
// @Success 200 {object} pagination.OffsetResult[domain.News]
// @Failure 400 {object} map[string]string
// @Router /news [get]
func (r *NewsRouter) listHandler(c echo.Context) error {
	var req listRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid query parameters", err)
	}
	if err := req.Validate(); err != nil {
		return apperr.NewValidationWrap("invalid pagination", err)
	}
	if req.Source != "" && !r.knownSource(req.Source) {
		return apperr.NewValidation("unknown source: " + req.Source)
	}

	items, total, err := r.service.List(c.Request().Context(), storage.ListQuery{
		Source: req.Source,
		Offset: req.Offset(),
		Size:   req.Size,
	})
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.News{}
	}

	return c.JSON(http.StatusOK, pagination.NewOffsetResult(items, total, req.Page, req.Size))
}

// refreshHandler godoc
// @Summary Collect news now
// @Description Runs one collection over every configured source and stores the rows.
// @Tags news
// @Produce json
// @Success 200 {object} service.RefreshResult
// @Failure 409 {object} map[string]string
// @Router /news/refresh [post]
func (r *NewsRouter) refreshHandler(c echo.Context) error {
	// a client that hangs up must not abort a collection already under way
	res, err := r.service.Refresh(context.WithoutCancel(c.Request().Context()))
	if errors.Is(err, service.ErrRefreshInProgress) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

type sourcesResponse struct {
	Sources     []config.SourceConfig  `json:"sources"`
	LastRefresh *service.RefreshResult `json:"last_refresh,omitempty"`
}

// sourcesHandler godoc
// @Summary List configured sources
// @Tags sources
// @Produce json
// @Success 200 {object} sourcesResponse
// @Router /sources [get]
func (r *NewsRouter) sourcesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, sourcesResponse{
		Sources:     r.service.Sources(),
		LastRefresh: r.service.LastRefresh(),
	})
}

func (r *NewsRouter) knownSource(id string) bool {
	return slices.ContainsFunc(r.service.Sources(), func(s config.SourceConfig) bool {
		return s.ID == id
	})
}
