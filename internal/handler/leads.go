package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dfwhvac/internal/service"
)

// CreateLead 处理 JSON 形式的线索提交。
//
//	201 {success, message, id}   新线索
//	200 {success, message}       时间窗口内的重复提交
//	400 {error, fields}          校验失败
//	500 {error}                  存储失败
func (a *API) CreateLead(c *gin.Context) {
	if a.leads == nil {
		respondError(c, http.StatusServiceUnavailable, service.MsgLeadFailed)
		return
	}

	var input service.LeadInput
	if !bindJSON(c, &input, "invalid lead payload") {
		return
	}
	input.UserAgent = c.Request.UserAgent()
	input.ClientIP = c.ClientIP()
	if input.SourcePage == "" {
		input.SourcePage = c.Request.Referer()
	}

	lead, err := a.leads.Submit(c.Request.Context(), input)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead payload", "fields": verr.Fields})
		case errors.Is(err, service.ErrLeadDuplicate):
			c.JSON(http.StatusOK, gin.H{"success": true, "message": service.SuccessMessage(input.LeadType)})
		default:
			c.Error(err)
			respondError(c, http.StatusInternalServerError, service.MsgLeadFailed)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": service.SuccessMessage(lead.LeadType),
		"id":      lead.PublicID,
	})
}

// SubmitLeadForm handles the script-free form posts. The result is shown
// as a flash toast after a 303 back to the form page.
func (a *API) SubmitLeadForm(leadType string) gin.HandlerFunc {
	page := leadPages[service.NormalizeLeadType(leadType)]
	return func(c *gin.Context) {
		var input service.LeadInput
		if err := c.ShouldBind(&input); err != nil {
			a.setFlash(c, "error", service.MsgLeadFailed)
			c.Redirect(http.StatusSeeOther, page.Path)
			return
		}
		input.LeadType = page.LeadType
		input.UserAgent = c.Request.UserAgent()
		input.ClientIP = c.ClientIP()
		if input.SourcePage == "" {
			input.SourcePage = page.Path
		}
		back := safeRedirectPath(c.PostForm("redirect"), page.Path)

		if a.leads == nil {
			a.setFlash(c, "error", service.MsgLeadFailed)
			c.Redirect(http.StatusSeeOther, back)
			return
		}

		_, err := a.leads.Submit(c.Request.Context(), input)
		var verr *service.ValidationError
		switch {
		case err == nil, errors.Is(err, service.ErrLeadDuplicate):
			a.setFlash(c, "success", service.SuccessMessage(page.LeadType))
		case errors.As(err, &verr):
			a.setFlash(c, "error", "Please check the form: "+verr.Summary())
		default:
			c.Error(err)
			a.setFlash(c, "error", service.MsgLeadFailed)
		}
		c.Redirect(http.StatusSeeOther, back)
	}
}
