package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"storyvault/internal/board"
	"storyvault/internal/models"
	"storyvault/internal/services"
	"storyvault/internal/utils"
)

const captchaAnswerKey = "captcha_answer"

// pageData is what the listing cache holds per page.
type pageData struct {
	Posts []models.Post
	Total int64
}

type PostHandler struct {
	lifecycle      *board.Lifecycle
	validator      *board.Validator
	store          board.PostStore
	captchaService *services.CaptchaService
}

func NewPostHandler(lifecycle *board.Lifecycle, validator *board.Validator, store board.PostStore) *PostHandler {
	return &PostHandler{
		lifecycle:      lifecycle,
		validator:      validator,
		store:          store,
		captchaService: services.NewCaptchaService(),
	}
}

// Index shows a page of active posts with the create form. The page query
// parameter is 1-based in the URL, 0-based everywhere else.
func (h *PostHandler) Index(c *gin.Context) {
	page := utils.StringToInt(c.Query("page"))
	if page < 1 {
		page = 1
	}

	data := h.indexData(c, page-1)
	Render(c, http.StatusOK, "post/index.html", data)
}

// indexData assembles the listing view-model and arms a fresh captcha.
// The post page itself is cached briefly; the captcha never is.
func (h *PostHandler) indexData(c *gin.Context, page int) gin.H {
	cacheKey := fmt.Sprintf("posts:page:%d", page)

	var pd pageData
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		pd = cached.(pageData)
	} else {
		posts, total, err := h.store.ListActive(page*board.PageSize, board.PageSize)
		if err != nil {
			posts, total = nil, 0
		}
		for i := range posts {
			count, err := h.store.CountByIP(posts[i].IP, true)
			if err == nil {
				posts[i].AuthorPostCount = int(count)
			}
		}
		pd = pageData{Posts: posts, Total: total}
		utils.GetCache().Set(cacheKey, pd, time.Minute)
	}

	info := board.Paginate(page, pd.Total, board.PageSize)

	question, answer := h.captchaService.GenerateMathProblem()
	session := sessions.Default(c)
	session.Set(captchaAnswerKey, answer)
	session.Save()

	return gin.H{
		"Title":   "StoryVault",
		"Posts":   pd.Posts,
		"Page":    info,
		"Captcha": question,
	}
}

// Create handles the post form submission.
func (h *PostHandler) Create(c *gin.Context) {
	session := sessions.Default(c)
	expected, hasCaptcha := session.Get(captchaAnswerKey).(int)
	captchaOK := hasCaptcha && h.captchaService.Verify(c.PostForm("captcha"), expected)
	// Single use: a wrong answer forces a fresh challenge.
	session.Delete(captchaAnswerKey)
	session.Save()

	in := board.CreateInput{
		Author:    c.PostForm("author"),
		Email:     c.PostForm("email"),
		Message:   c.PostForm("message"),
		IP:        c.ClientIP(),
		CaptchaOK: captchaOK,
	}
	now := time.Now()

	if fe := h.validator.ValidateCreate(in, now); len(fe) > 0 {
		data := h.indexData(c, 0)
		data["Errors"] = fe
		data["Form"] = in
		Render(c, http.StatusBadRequest, "post/index.html", data)
		return
	}

	if _, err := h.lifecycle.Create(in, now); err != nil {
		Flash(c, FlashError, board.MsgCreateFail)
	} else {
		utils.GetCache().Purge()
		Flash(c, FlashSuccess, board.MsgCreateSuccess)
	}
	c.Redirect(http.StatusFound, "/")
}

// ShowEdit renders the edit form behind the manage-link gate.
func (h *PostHandler) ShowEdit(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	token := c.Query("token")

	post, err := h.lifecycle.FindForManage(id, token)
	if err != nil {
		h.flashLifecycleError(c, err)
		c.Redirect(http.StatusFound, "/")
		return
	}
	if post.IsDeleted() {
		Flash(c, FlashError, board.MsgManageFail)
		c.Redirect(http.StatusFound, "/")
		return
	}
	if !h.lifecycle.WithinEditWindow(post, time.Now()) {
		Flash(c, FlashError, board.MsgEditExpired)
		c.Redirect(http.StatusFound, "/")
		return
	}

	Render(c, http.StatusOK, "post/edit.html", gin.H{
		"Title": "Edit post",
		"Post":  post,
		"Token": token,
	})
}

// Edit applies the submitted message to the post.
func (h *PostHandler) Edit(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	token := c.Query("token")

	post, fe, err := h.lifecycle.Edit(id, token, c.PostForm("message"), time.Now())
	if err != nil {
		h.flashLifecycleError(c, err)
		c.Redirect(http.StatusFound, "/")
		return
	}
	if len(fe) > 0 {
		Flash(c, FlashError, fe.First("message"))
		c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d/edit?token=%s", post.ID, token))
		return
	}

	utils.GetCache().Purge()
	Flash(c, FlashSuccess, board.MsgEditSuccess)
	c.Redirect(http.StatusFound, "/")
}

// ShowDelete renders the confirmation page; only the confirm POST mutates.
func (h *PostHandler) ShowDelete(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	token := c.Query("token")

	post, err := h.lifecycle.FindForManage(id, token)
	if err != nil {
		h.flashLifecycleError(c, err)
		c.Redirect(http.StatusFound, "/")
		return
	}
	if post.IsDeleted() {
		Flash(c, FlashInfo, board.MsgDeleteSuccess)
		c.Redirect(http.StatusFound, "/")
		return
	}
	if !h.lifecycle.WithinDeleteWindow(post, time.Now()) {
		Flash(c, FlashError, board.MsgDeleteExpired)
		c.Redirect(http.StatusFound, "/")
		return
	}

	Render(c, http.StatusOK, "post/delete.html", gin.H{
		"Title": "Delete post",
		"Post":  post,
		"Token": token,
	})
}

// Delete soft-deletes the post after the explicit confirmation.
func (h *PostHandler) Delete(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	token := c.Query("token")

	if err := h.lifecycle.Delete(id, token, time.Now()); err != nil {
		h.flashLifecycleError(c, err)
		c.Redirect(http.StatusFound, "/")
		return
	}

	utils.GetCache().Purge()
	Flash(c, FlashSuccess, board.MsgDeleteSuccess)
	c.Redirect(http.StatusFound, "/")
}

// flashLifecycleError maps engine sentinels to user-facing flashes.
// Not-found and bad-token share one message on purpose.
func (h *PostHandler) flashLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, board.ErrNotFound), errors.Is(err, board.ErrBadToken):
		Flash(c, FlashError, board.MsgManageFail)
	case errors.Is(err, board.ErrEditExpired):
		Flash(c, FlashError, board.MsgEditExpired)
	case errors.Is(err, board.ErrDeleteExpired):
		Flash(c, FlashError, board.MsgDeleteExpired)
	default:
		Flash(c, FlashError, board.MsgStorageFail)
	}
}
