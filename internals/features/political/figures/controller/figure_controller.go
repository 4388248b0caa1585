package controller

import (
	"mime/multipart"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "civicdata_backend/internals/helpers"
	helperOSS "civicdata_backend/internals/helpers/oss"

	addressDTO "civicdata_backend/internals/features/core/address/dto"
	"civicdata_backend/internals/features/political/figures/dto"
	"civicdata_backend/internals/features/political/figures/service"
)

const photoDir = "political-figures/photos"

type FigureController struct {
	svc  *service.FigureService
	blob helperOSS.BlobService
}

func NewFigureController(db *gorm.DB, blob helperOSS.BlobService) *FigureController {
	return &FigureController{
		svc:  service.NewFigureService(db, blob),
		blob: blob,
	}
}

// GET /political-figures/get/list/
func (fc *FigureController) GetList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var partyID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("party_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid party_id filter")
		}
		partyID = &id
	}

	figures, total, err := fc.svc.List(c.Query("search"), partyID, paging)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Success", dto.FromModelFigures(figures),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /political-figures/get/detail/:id/
func (fc *FigureController) GetDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid political figure id")
	}
	m, err := fc.svc.GetByID(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Success", dto.FromModelFigure(m))
}

// GET /political-figures/get/slug/:slug/
func (fc *FigureController) GetBySlug(c *fiber.Ctx) error {
	m, err := fc.svc.GetBySlug(c.Params("slug"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Success", dto.FromModelFigure(m))
}

// POST /political-figures/create/
// Accepts JSON or multipart form data; multipart carries the photo file
// and the address sub-objects as JSON-encoded form fields.
func (fc *FigureController) Create(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.FigureCreateRequest
	if isMultipart(c) {
		if err := fc.parseCreateForm(c, &req); err != nil {
			return helper.JsonFromError(c, err)
		}
	} else if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	m, err := fc.svc.Create(c.UserContext(), &req, actorID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Political figure created", dto.FromModelFigure(m))
}

// PATCH /political-figures/update/:id/
// The photo field is tri-state: key absent means keep, key sent empty
// or null means clear, a file or new value means replace.
func (fc *FigureController) Update(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid political figure id")
	}

	var req dto.FigureUpdateRequest
	if isMultipart(c) {
		if err := fc.parseUpdateForm(c, &req); err != nil {
			return helper.JsonFromError(c, err)
		}
	} else if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	m, err := fc.svc.Update(c.UserContext(), id, &req, actorID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Political figure updated", dto.FromModelFigure(m))
}

// DELETE /political-figures/delete/:id/
func (fc *FigureController) Delete(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid political figure id")
	}
	if err := fc.svc.Delete(c.UserContext(), id, actorID); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Political figure deleted", fiber.Map{"political_figure_id": id})
}

/* ===============================
   Multipart parsing
=================================*/

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

// formValue reports presence separately from the value; the tri-state
// photo semantics hinge on that distinction.
func formValue(form *multipart.Form, key string) (string, bool) {
	vals, ok := form.Value[key]
	if !ok || len(vals) == 0 {
		return "", ok
	}
	return strings.TrimSpace(vals[0]), true
}

func (fc *FigureController) parseCreateForm(c *fiber.Ctx, req *dto.FigureCreateRequest) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid multipart form")
	}

	req.FullName, _ = formValue(form, "full_name")
	req.DateOfBirth, _ = formValue(form, "date_of_birth")
	req.Gender, _ = formValue(form, "gender")
	req.Biography, _ = formValue(form, "biography")
	req.ContactNumber, _ = formValue(form, "contact_number")
	req.Website, _ = formValue(form, "website")
	req.FacebookURL, _ = formValue(form, "facebook_url")
	req.TwitterURL, _ = formValue(form, "twitter_url")
	req.InstagramURL, _ = formValue(form, "instagram_url")

	if v, ok := formValue(form, "political_party"); ok && v != "" {
		req.PoliticalParty = &v
	}
	if vals, ok := form.Value["aliases"]; ok {
		for _, v := range vals {
			if v = strings.TrimSpace(v); v != "" {
				req.Aliases = append(req.Aliases, v)
			}
		}
	}

	if v, ok := formValue(form, "home_address"); ok && v != "" {
		if err := sonic.Unmarshal([]byte(v), &req.HomeAddress); err != nil {
			return helper.NewValidationError(map[string][]string{
				"home_address": {"Invalid JSON payload."},
			})
		}
	}
	if v, ok := formValue(form, "current_address"); ok && v != "" {
		if err := sonic.Unmarshal([]byte(v), &req.CurrentAddress); err != nil {
			return helper.NewValidationError(map[string][]string{
				"current_address": {"Invalid JSON payload."},
			})
		}
	}

	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		if fc.blob == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Photo storage is not configured")
		}
		url, err := fc.blob.UploadImage(c.UserContext(), photoDir, fh)
		if err != nil {
			return err
		}
		req.PhotoURL = url
	}
	return nil
}

func (fc *FigureController) parseUpdateForm(c *fiber.Ctx, req *dto.FigureUpdateRequest) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid multipart form")
	}

	setIfPresent := func(key string, target **string) {
		if v, ok := formValue(form, key); ok {
			val := v
			*target = &val
		}
	}
	setIfPresent("full_name", &req.FullName)
	setIfPresent("date_of_birth", &req.DateOfBirth)
	setIfPresent("gender", &req.Gender)
	setIfPresent("biography", &req.Biography)
	setIfPresent("contact_number", &req.ContactNumber)
	setIfPresent("website", &req.Website)
	setIfPresent("facebook_url", &req.FacebookURL)
	setIfPresent("twitter_url", &req.TwitterURL)
	setIfPresent("instagram_url", &req.InstagramURL)

	if v, ok := formValue(form, "is_active"); ok {
		active := v == "true" || v == "1"
		req.IsActive = &active
	}
	if vals, ok := form.Value["aliases"]; ok {
		aliases := make([]string, 0, len(vals))
		for _, v := range vals {
			if v = strings.TrimSpace(v); v != "" {
				aliases = append(aliases, v)
			}
		}
		req.Aliases = &aliases
	}

	if v, ok := formValue(form, "political_party"); ok {
		if v == "" || v == "null" {
			req.PoliticalParty.Present = true
			req.PoliticalParty.Valid = false
		} else {
			id, err := uuid.Parse(v)
			if err != nil {
				return helper.NewValidationError(map[string][]string{
					"political_party": {"Enter a valid identifier."},
				})
			}
			req.PoliticalParty.Present = true
			req.PoliticalParty.Valid = true
			req.PoliticalParty.Value = id
		}
	}

	if v, ok := formValue(form, "home_address"); ok && v != "" {
		var addr addressDTO.AddressUpdateRequest
		if err := sonic.Unmarshal([]byte(v), &addr); err != nil {
			return helper.NewValidationError(map[string][]string{
				"home_address": {"Invalid JSON payload."},
			})
		}
		req.HomeAddress = &addr
	}
	if v, ok := formValue(form, "current_address"); ok && v != "" {
		var addr addressDTO.AddressUpdateRequest
		if err := sonic.Unmarshal([]byte(v), &addr); err != nil {
			return helper.NewValidationError(map[string][]string{
				"current_address": {"Invalid JSON payload."},
			})
		}
		req.CurrentAddress = &addr
	}

	// file wins over the text field; a bare "photo" key with an empty
	// value is the explicit-clear signal
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		if fc.blob == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Photo storage is not configured")
		}
		url, err := fc.blob.UploadImage(c.UserContext(), photoDir, fh)
		if err != nil {
			return err
		}
		req.Photo.Set(url)
	} else if v, ok := formValue(form, "photo"); ok {
		if v == "" || v == "null" {
			req.Photo.SetNull()
		} else {
			req.Photo.Set(v)
		}
	}
	return nil
}
