package router

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/logic-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/logic-hunter/internal/dto"
	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
	"github.com/DjordjeVuckovic/logic-hunter/internal/truthtable"
	"github.com/DjordjeVuckovic/logic-hunter/internal/workspace"
	"github.com/DjordjeVuckovic/logic-hunter/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type WorkspaceRouter struct {
	e     *echo.Echo
	store *workspace.Store
}

func NewWorkspaceRouter(e *echo.Echo, store *workspace.Store) *WorkspaceRouter {
	return &WorkspaceRouter{
		e:     e,
		store: store,
	}
}

func (r *WorkspaceRouter) Bind() {
	g := r.e.Group("/api/v1/workspaces")
	g.POST("", r.createHandler)
	g.GET("", r.listHandler)
	g.GET("/:id", r.getHandler)
	g.DELETE("/:id", r.deleteHandler)
	g.POST("/:id/tokens", r.addTokenHandler)
	g.PUT("/:id/tokens/move", r.moveTokenHandler)
	g.DELETE("/:id/tokens/:index", r.removeTokenHandler)
	g.DELETE("/:id/tokens", r.clearHandler)
	g.PUT("/:id/vars/:name", r.setVarHandler)
	g.GET("/:id/table", r.tableHandler)
}

func (r *WorkspaceRouter) workspaceID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperr.NewValidationWrap("invalid workspace id", err)
	}
	return id, nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, workspace.ErrNotFound) {
		return apperr.NewNotFoundWrap("workspace not found", err)
	}
	return apperr.NewValidationWrap("invalid workspace operation", err)
}

// @Summary Create a workspace
// @Tags workspaces
// @Accept json
// @Produce json
// @Param request body dto.CreateWorkspaceRequest false "optional name"
// @Success 201 {object} dto.WorkspaceResponse
// @Router /api/v1/workspaces [post]
func (r *WorkspaceRouter) createHandler(c echo.Context) error {
	var req dto.CreateWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	ws := r.store.Create(req.Name)
	return c.JSON(http.StatusCreated, dto.NewWorkspaceResponse(ws))
}

// @Summary List workspaces
// @Tags workspaces
// @Produce json
// @Param page query int false "page number"
// @Param size query int false "page size"
// @Success 200 {object} pagination.OffsetResult[dto.WorkspaceResponse]
// @Router /api/v1/workspaces [get]
func (r *WorkspaceRouter) listHandler(c echo.Context) error {
	var page pagination.OffsetRequest
	if err := c.Bind(&page); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	if err := page.Validate(); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}

	all := r.store.List()
	total := len(all)

	offset := (page.Page - 1) * page.Size
	if offset > total {
		offset = total
	}
	end := offset + page.Size
	if end > total {
		end = total
	}

	items := make([]dto.WorkspaceResponse, 0, end-offset)
	for _, ws := range all[offset:end] {
		items = append(items, dto.NewWorkspaceResponse(ws))
	}

	return c.JSON(http.StatusOK, pagination.NewOffsetResult(items, int64(total), page.Page, page.Size))
}

// @Summary Get a workspace
// @Tags workspaces
// @Produce json
// @Param id path string true "workspace id"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/workspaces/{id} [get]
func (r *WorkspaceRouter) getHandler(c echo.Context) error {
	id, err := r.workspaceID(c)
	if err != nil {
		return err
	}

	ws, err := r.store.Get(id)
	if err != nil {
		return mapStoreErr(err)
	}
	return c.JSON(http.StatusOK, dto.NewWorkspaceResponse(ws))
}

// @Summary Delete a workspace
// @Tags workspaces
// @Param id path string true "workspace id"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/workspaces/{id} [delete]
func (r *WorkspaceRouter) deleteHandler(c echo.Context) error {
	id, err := r.workspaceID(c)
	if err != nil {
		return err
	}

	if err := r.store.Delete(id); err != nil {
		return mapStoreErr(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary Add a token to the strip
// @Description Appends the token, or inserts it at index when given. This is the palette click and the chip drop.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path string true "workspace id"
// @Param request body dto.AddTokenRequest true "token in interchange form"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/workspaces/{id}/tokens [post]
func (r *WorkspaceRouter) addTokenHandler(c echo.Context) error {
	id, err := r.workspaceID(c)
	if err != nil {
		return err
	}

	var req dto.AddTokenRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := token.CheckVocabulary([]token.Token{req.Token}); err != nil {
		return apperr.NewValidationWrap("invalid token", err)
	}

	ws, err := r.store.Update(id, func(w *workspace.Workspace) error {
		if req.Index != nil {
			return w.Insert(*req.Index, req.Token)
		}
		w.Append(req.Token)
		return nil
	})
	if err != nil {
		return mapStoreErr(err)
	}
	return c.JSON(http.StatusOK, dto.NewWorkspaceResponse(ws))
}

// @Summary Move a token within the strip
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path string true "workspace id"
// @Param request body dto.MoveTokenRequest true "source and target positions"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/workspaces/{id}/tokens/move [put]
func (r *WorkspaceRouter) moveTokenHandler(c echo.Context) error {
	id, err := r.workspaceID(c)
	if err != nil {
		return err
	}

	var req dto.MoveTokenRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	ws, err := r.store.Update(id, func(w *workspace.Workspace) error {
		return w.Move(req.From, req.To)
	})
	if err != nil {
		return mapStoreErr(err)
	}
	return c.JSON(http.StatusOK, dto.NewWorkspaceResponse(ws))
}

// @Summary Remove one token
// @Tags workspaces
// @Produce json
// @Param id path string true "workspace id"
// @Param index path int true "token position"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/workspaces/{id}/tokens/{index} [delete]
func (r *WorkspaceRouter) removeTokenHandler(c echo.Context) error {
	id, err := r.workspaceID(c)
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return apperr.NewValidationWrap("invalid token position", err)
	}

	ws, err := r.store.Update(id, func(w *workspace.Workspace) error {
		return w.Remove(index)
	})
	if err != nil {
		return mapStoreErr(err)
	}
	return c.JSON(http.StatusOK, dto.NewWorkspaceResponse(ws))
}

// @Summary Clear the strip
// @Tags workspaces
// @Produce json
// @Param id path string true "workspace id"
// @Success 200 {object} dto.WorkspaceResponse
// @Router /api/v1/workspaces/{id}/tokens [delete]
func (r *WorkspaceRouter) clearHandler(c echo.Context) error {
	id, err := r.workspaceID(c)
	if err != nil {
		return err
	}

	ws, err := r.store.Update(id, func(w *workspace.Workspace) error {
		w.Clear()
		return nil
	})
	if err != nil {
		return mapStoreErr(err)
	}
	return c.JSON(http.StatusOK, dto.NewWorkspaceResponse(ws))
}

// @Summary Assign a variable
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path string true "workspace id"
// @Param name path string true "variable name"
// @Param request body dto.SetVarRequest true "boolean value"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/workspaces/{id}/vars/{name} [put]
func (r *WorkspaceRouter) setVarHandler(c echo.Context) error {
	id, err := r.workspaceID(c)
	if err != nil {
		return err
	}

	var req dto.SetVarRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	ws, err := r.store.Update(id, func(w *workspace.Workspace) error {
		return w.SetVar(c.Param("name"), req.Value)
	})
	if err != nil {
		return mapStoreErr(err)
	}
	return c.JSON(http.StatusOK, dto.NewWorkspaceResponse(ws))
}

// @Summary Truth table for the strip
// @Tags workspaces
// @Produce json
// @Param id path string true "workspace id"
// @Success 200 {object} dto.TableResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/workspaces/{id}/table [get]
func (r *WorkspaceRouter) tableHandler(c echo.Context) error {
	id, err := r.workspaceID(c)
	if err != nil {
		return err
	}

	ws, err := r.store.Get(id)
	if err != nil {
		return mapStoreErr(err)
	}

	table := truthtable.Build(ws.Tokens)
	return c.JSON(http.StatusOK, dto.NewTableResponse(ws.Tokens, table))
}
