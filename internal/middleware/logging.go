package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger crea un logger zap estructurado. Con nivel "debug" escribe a
// consola con color; si no, JSON compacto.
func NewLogger(nivel string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if nivel == "debug" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		panic("no se pudo crear el logger: " + err.Error())
	}
	return logger
}

type escritorConEstado struct {
	http.ResponseWriter
	estado int
}

func (w *escritorConEstado) WriteHeader(codigo int) {
	w.estado = codigo
	w.ResponseWriter.WriteHeader(codigo)
}

// RegistroSolicitudes loguea cada solicitud HTTP con zap: Warn para 4xx,
// Error para 5xx, Info para el resto.
func RegistroSolicitudes(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inicio := time.Now()
			ww := &escritorConEstado{ResponseWriter: w, estado: http.StatusOK}

			next.ServeHTTP(ww, r)

			campos := []zap.Field{
				zap.String("metodo", r.Method),
				zap.String("ruta", r.URL.Path),
				zap.Int("estado", ww.estado),
				zap.Duration("duracion", time.Since(inicio)),
				zap.String("origen", r.RemoteAddr),
			}
			switch {
			case ww.estado >= 500:
				logger.Error("solicitud http", campos...)
			case ww.estado >= 400:
				logger.Warn("solicitud http", campos...)
			default:
				logger.Info("solicitud http", campos...)
			}
		})
	}
}
