package gin

import (
	"fmt"
	"html/template"

	ginlib "github.com/gin-gonic/gin"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/config"
	"github.com/svyrydov-ihor/burger-joint-web-app/pkg/logger"
)

type Server struct {
	engine *ginlib.Engine
	addr   string
}

func NewEngine(env string, log logger.Logger, templates *template.Template) *ginlib.Engine {
	if env == "production" || env == "prod" {
		ginlib.SetMode(ginlib.ReleaseMode)
	}

	r := ginlib.New()
	r.Use(ginlib.Recovery())
	r.Use(RequestLogger(log))
	if templates != nil {
		r.SetHTMLTemplate(templates)
	}
	return r
}

func NewServer(cfg config.ServerConfig, engine *ginlib.Engine) *Server {
	return &Server{
		engine: engine,
		addr:   cfg.Address(),
	}
}

func (s *Server) Run() error {
	if s.engine == nil {
		return fmt.Errorf("gin engine is nil")
	}
	return s.engine.Run(s.addr)
}
