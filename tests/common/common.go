package common

import (
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"path"
	"runtime"
	"strings"
	"testing"

	"leopa/api/contexts"
	"leopa/api/models"
	"leopa/api/services"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

func InitConfig() *models.Config {
	var cfg models.Config

	// get this file's path
	_, filename, _, _ := runtime.Caller(0)
	folderpath := path.Dir(filename)

	// retrieve common's test.config
	f, err := os.Open(fmt.Sprintf("%s/test.config.yml", folderpath))
	if err != nil {
		processError(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		processError(err)
	}

	return &cfg
}

func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}

// InitServices builds catalog and calculation services over the bundled
// morph catalog.
func InitServices(_t *testing.T, _cfg *models.Config) (*services.CatalogService, *services.CalculationService) {
	catalog := services.NewCatalogService(nil, _cfg)
	require.NoError(_t, catalog.Init())
	_t.Cleanup(catalog.Stop)

	return catalog, services.NewCalculationService(catalog, _cfg)
}

// NewLeopaContext returns a request context wired the same way the server
// wires it, plus the recorder capturing the response.
func NewLeopaContext(_t *testing.T, _cfg *models.Config, method string, target string, body string) (*contexts.LeopaContext, *httptest.ResponseRecorder) {
	catalog, calculator := InitServices(_t, _cfg)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	if body != "" {
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	recorder := httptest.NewRecorder()

	e := echo.New()
	return &contexts.LeopaContext{
		Context:            e.NewContext(request, recorder),
		Config:             _cfg,
		CatalogService:     catalog,
		CalculationService: calculator,
	}, recorder
}

// RequireStatus fails the test unless the handler answered with shouldBe.
func RequireStatus(_t *testing.T, recorder *httptest.ResponseRecorder, shouldBe int) {
	require.Equal(_t, shouldBe, recorder.Code, fmt.Sprintf("Error -- Status: %d ; Should be %d ; Body: %s", recorder.Code, shouldBe, recorder.Body.String()))
}
