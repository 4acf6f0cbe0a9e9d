package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/dfwhvac/internal/db"
	"github.com/dfwhvac/internal/service"
)

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"title": "Admin Login",
	})
}

// Login 校验账号密码并写入会话
func (a *API) Login(c *gin.Context) {
	if a.admins == nil {
		c.HTML(http.StatusServiceUnavailable, "admin_login.html", gin.H{"title": "Admin Login", "error": "Admin login is not available"})
		return
	}

	user, err := a.admins.Authenticate(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		status := http.StatusUnauthorized
		message := "Invalid username or password"
		if !errors.Is(err, service.ErrInvalidCredentials) {
			c.Error(err)
			status = http.StatusInternalServerError
			message = "Login failed, please try again"
		}
		c.HTML(status, "admin_login.html", gin.H{"title": "Admin Login", "error": message})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "admin_login.html", gin.H{"title": "Admin Login", "error": "Could not save session"})
		return
	}

	c.Redirect(http.StatusFound, "/admin/leads")
}

// Logout 处理用户登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// AuthRequired 是一个简单的认证中间件；API 请求返回 401，页面请求跳转登录。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user_id") == nil {
			if strings.HasPrefix(c.Request.URL.Path, "/admin/api/") {
				respondError(c, http.StatusUnauthorized, "unauthorized")
			} else {
				c.Redirect(http.StatusFound, "/admin/login")
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

func leadFilterFromQuery(c *gin.Context) service.LeadFilter {
	return service.LeadFilter{
		Status:   strings.TrimSpace(c.Query("status")),
		LeadType: strings.TrimSpace(c.Query("type")),
		Page:     parsePositiveInt(c.Query("page"), 1),
		PerPage:  parsePositiveInt(c.Query("per_page"), 20),
	}
}

// ShowLeads renders the lead inbox.
func (a *API) ShowLeads(c *gin.Context) {
	filter := leadFilterFromQuery(c)
	result, err := a.leads.List(filter)
	if err != nil {
		if errors.Is(err, service.ErrLeadStatusInvalid) {
			c.Redirect(http.StatusFound, "/admin/leads")
			return
		}
		c.Error(err)
		c.String(http.StatusInternalServerError, "failed to load leads")
		return
	}

	session := sessions.Default(c)
	c.HTML(http.StatusOK, "admin_leads.html", gin.H{
		"title":    "Leads",
		"username": session.Get("username"),
		"result":   result,
		"filter":   filter,
		"statuses": []string{db.LeadStatusNew, db.LeadStatusContacted, db.LeadStatusClosed},
	})
}

// GetLeads returns a page of leads as JSON.
func (a *API) GetLeads(c *gin.Context) {
	result, err := a.leads.List(leadFilterFromQuery(c))
	if err != nil {
		if errors.Is(err, service.ErrLeadStatusInvalid) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load leads")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"leads":      result.Leads,
		"total":      result.Total,
		"page":       result.Page,
		"perPage":    result.PerPage,
		"totalPages": result.TotalPages,
		"counts": gin.H{
			db.LeadStatusNew:       result.NewCount,
			db.LeadStatusContacted: result.ContactedCount,
			db.LeadStatusClosed:    result.ClosedCount,
		},
	})
}

type leadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateLeadStatus moves a lead to another status.
func (a *API) UpdateLeadStatus(c *gin.Context) {
	var req leadStatusRequest
	if !bindJSON(c, &req, "status is required") {
		return
	}

	lead, err := a.leads.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLeadStatusInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrLeadNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		default:
			c.Error(err)
			respondError(c, http.StatusInternalServerError, "failed to update lead")
		}
		return
	}
	c.JSON(http.StatusOK, lead)
}
