package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"mottufind/config"
	"mottufind/internal/api/router"
	"mottufind/internal/pkg/cache"
	"mottufind/internal/pkg/database"
	"mottufind/internal/pkg/health"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/mqtt"
	"mottufind/internal/pkg/token"
	"mottufind/internal/repository/filialrepo"
	"mottufind/internal/repository/leitorrfidrepo"
	"mottufind/internal/repository/leiturarfidrepo"
	"mottufind/internal/repository/motorepo"
	"mottufind/internal/repository/patiorepo"
	"mottufind/internal/repository/usuariorepo"
	"mottufind/internal/service/authservice"
	"mottufind/internal/service/filialservice"
	"mottufind/internal/service/leitorrfidservice"
	"mottufind/internal/service/leiturarfidservice"
	"mottufind/internal/service/motoservice"
	"mottufind/internal/service/patioservice"
	"mottufind/internal/service/usuarioservice"
)

// @title MottuFind API
// @version 1.0
// @description Rastreamento de motos da frota Mottu em pátios e filiais.
// @BasePath /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	// 0. Variáveis de ambiente. Sem .env seguimos com o ambiente do sistema (ex.: Docker).
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado. Usando apenas variáveis do ambiente.")
	}

	// 1. Configuração e logger
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}
	appLog := logger.NewLogger(cfg.LogLevel)
	appLog.Info("Inicializando MottuFind.", map[string]interface{}{"env": cfg.Environment})

	// 2. Infraestrutura
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	if cfg.AutoMigrate {
		if err := database.Migrate(db, "up"); err != nil {
			appLog.Fatal("Falha ao aplicar migrações.", err)
		}
		appLog.Info("Migrações aplicadas.", nil)
	}

	cacheClient := cache.NewRedisClient(cfg.RedisAddr)
	defer cacheClient.Close()

	tokenSvc := token.NewService(cfg.JWTKey, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenExpiry)

	// 3. Repository -> Service
	patioRepo := patiorepo.NewPatioRepository(db, cfg.DBTimeout, appLog)
	filialRepo := filialrepo.NewFilialRepository(db, cfg.DBTimeout, appLog)
	motoRepo := motorepo.NewMotoRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, appLog)
	usuarioRepo := usuariorepo.NewUsuarioRepository(db, cfg.DBTimeout, appLog)
	leitorRepo := leitorrfidrepo.NewLeitorRfidRepository(db, cfg.DBTimeout, appLog)
	leituraRepo := leiturarfidrepo.NewLeituraRfidRepository(db, cfg.DBTimeout, appLog)

	leituraSvc := leiturarfidservice.NewService(leituraRepo, appLog)
	services := router.Services{
		Auth:        authservice.NewService(usuarioRepo, tokenSvc, appLog),
		Moto:        motoservice.NewService(motoRepo, appLog),
		Patio:       patioservice.NewService(patioRepo, appLog),
		Filial:      filialservice.NewService(filialRepo, appLog),
		Usuario:     usuarioservice.NewService(usuarioRepo, appLog),
		LeitorRfid:  leitorrfidservice.NewService(leitorRepo, appLog),
		LeituraRfid: leituraSvc,
	}
	appLog.Debug("Serviços inicializados.", nil)

	// 4. Ingestão de leituras RFID (opcional)
	if cfg.MQTTBrokerURL != "" {
		mqttClient, err := mqtt.Connect(mqtt.Config{BrokerURL: cfg.MQTTBrokerURL, ClientID: cfg.MQTTClientID}, appLog)
		if err != nil {
			appLog.Fatal("Falha ao conectar ao broker MQTT.", err)
		}
		defer mqttClient.Close()

		ingestor := leiturarfidservice.NewIngestor(leituraSvc, appLog, cfg.DBTimeout)
		if err := mqttClient.Subscribe(cfg.MQTTTopic, 1, ingestor.HandleMessage); err != nil {
			appLog.Fatal("Falha ao assinar tópico de leituras.", err)
		}
		appLog.Info("Ingestão MQTT ativa.", map[string]interface{}{"topic": cfg.MQTTTopic})
	}

	// 5. Health checks e roteador
	registry := health.NewRegistry(5*time.Second, appLog,
		health.NewApplicationCheck(cfg.MemoryThresholdMB),
		health.NewDatabaseCheck(db),
		health.NewCacheCheck(cacheClient.Ping),
	)

	r := router.NewRouter(services, router.Options{
		TokenService:    tokenSvc,
		Health:          registry,
		Cache:           cacheClient,
		RateLimitMax:    cfg.RateLimitMaxRequests,
		RateLimitPeriod: cfg.RateLimitPeriod,
		AuthPatioFilial: cfg.AuthPatioFilial,
	}, appLog)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 6. Execução e graceful shutdown
	go func() {
		appLog.Info("Servidor MottuFind ouvindo.", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}
	appLog.Info("Servidor encerrado.", nil)
}
