package resumes_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/resumes"
	"jobboard-backend/internal/shared/server/middleware"
	localstore "jobboard-backend/internal/shared/storage/object/local"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &resumes.Service{
		Repo:  resumes.NewMemoryRepo(),
		Store: localstore.New(t.TempDir()),
	}

	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(middleware.Identity())
	resumes.NewHandler(svc).RegisterRoutes(api)
	return router
}

func uploadRequest(t *testing.T, fileName, content string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-User-Id", "user-1")
	return req
}

const uploadText = `Jane Doe
jane.doe@example.com 555-123-4567
Professional Experience
Developed Python and SQL services. Improved throughput by 40%.
Education
B.S. Computer Science`

func TestUploadEndpointScoresResume(t *testing.T) {
	router := newTestRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, "resume.txt", uploadText))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ResumeID string   `json:"resumeId"`
		Source   string   `json:"source"`
		AtsScore int      `json:"atsScore"`
		Skills   []string `json:"skills"`
		Feedback []string `json:"feedback"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ResumeID == "" {
		t.Fatal("expected resumeId")
	}
	if created.Source != "upload" {
		t.Fatalf("expected source upload, got %q", created.Source)
	}
	if created.AtsScore <= 0 {
		t.Fatalf("expected positive score, got %d", created.AtsScore)
	}
	if created.Skills == nil || created.Feedback == nil {
		t.Fatal("skills and feedback must be arrays, not null")
	}
}

func TestUploadEndpointRejectsUnsupportedFormat(t *testing.T) {
	router := newTestRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, "resume.exe", uploadText))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "unsupported_format") {
		t.Fatalf("expected unsupported_format code, got %s", resp.Body.String())
	}
}

func TestUploadEndpointRejectsUnusableText(t *testing.T) {
	router := newTestRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, "resume.txt", "hi"))

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "extraction_failed") {
		t.Fatalf("expected extraction_failed code, got %s", resp.Body.String())
	}
}

func TestUploadEndpointRequiresIdentity(t *testing.T) {
	router := newTestRouter(t)

	req := uploadRequest(t, "resume.txt", uploadText)
	req.Header.Del("X-User-Id")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func buildForm() url.Values {
	form := url.Values{}
	form.Set("full_name", "Jane Doe")
	form.Set("email", "jane.doe@example.com")
	form.Set("phone", "555-123-4567")
	form.Set("summary", "Backend engineer focused on data plumbing.")
	form.Set("skills_languages", "Python, Go, SQL")
	form.Set("experience_count", "1")
	form.Set("exp_title_0", "Software Engineer")
	form.Set("exp_company_0", "Acme")
	form.Set("exp_duration_0", "2021 - Present")
	form.Set("exp_description_0", "Built ingestion services.")
	return form
}

func postForm(t *testing.T, router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/build", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-User-Id", "user-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestBuildEndpointCreatesResume(t *testing.T) {
	router := newTestRouter(t)

	resp := postForm(t, router, buildForm())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ResumeID string `json:"resumeId"`
		FileName string `json:"fileName"`
		Source   string `json:"source"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Source != "builder" {
		t.Fatalf("expected source builder, got %q", created.Source)
	}
	if !strings.HasPrefix(created.FileName, "Resume_") {
		t.Fatalf("unexpected file name %q", created.FileName)
	}

	// Fetch detail and verify the canonical content shape.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+created.ResumeID, nil)
	req.Header.Set("X-User-Id", "user-1")
	detailResp := httptest.NewRecorder()
	router.ServeHTTP(detailResp, req)
	if detailResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", detailResp.Code)
	}
	var detail struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(detailResp.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if !strings.HasPrefix(detail.Content, "Jane Doe\n") {
		t.Fatalf("content must open with the applicant name, got %q", detail.Content)
	}
	if !strings.Contains(detail.Content, "Professional Experience") {
		t.Fatal("expected experience section in content")
	}
}

func TestBuildEndpointRequiresName(t *testing.T) {
	router := newTestRouter(t)

	form := buildForm()
	form.Del("full_name")
	resp := postForm(t, router, form)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestDownloadEndpointReturnsAttachment(t *testing.T) {
	router := newTestRouter(t)

	resp := postForm(t, router, buildForm())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var created struct {
		ResumeID string `json:"resumeId"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+created.ResumeID+"/download", nil)
	req.Header.Set("X-User-Id", "user-1")
	dl := httptest.NewRecorder()
	router.ServeHTTP(dl, req)

	if dl.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", dl.Code, dl.Body.String())
	}
	if ct := dl.Header().Get("Content-Type"); !strings.Contains(ct, "wordprocessingml") {
		t.Fatalf("unexpected content type %q", ct)
	}
	disposition := dl.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "attachment") || !strings.Contains(disposition, "Resume_") {
		t.Fatalf("unexpected disposition %q", disposition)
	}
	if !bytes.HasPrefix(dl.Body.Bytes(), []byte("PK")) {
		t.Fatal("expected a zip container body")
	}
}

func TestDownloadEndpointHidesOtherUsersResumes(t *testing.T) {
	router := newTestRouter(t)

	resp := postForm(t, router, buildForm())
	var created struct {
		ResumeID string `json:"resumeId"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+created.ResumeID+"/download", nil)
	req.Header.Set("X-User-Id", "someone-else")
	dl := httptest.NewRecorder()
	router.ServeHTTP(dl, req)

	if dl.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", dl.Code)
	}
}

func TestListEndpointReturnsNewestFirst(t *testing.T) {
	router := newTestRouter(t)

	for i := 0; i < 2; i++ {
		if resp := postForm(t, router, buildForm()); resp.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes", nil)
	req.Header.Set("X-User-Id", "user-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var list struct {
		Items []struct {
			ResumeID string `json:"resumeId"`
		} `json:"items"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list.Items))
	}
}
