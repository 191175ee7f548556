package main

import (
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/nftpersona/base/ctx"
	"github.com/x-xyz/nftpersona/base/env"
	"github.com/x-xyz/nftpersona/base/log"
	bValidator "github.com/x-xyz/nftpersona/base/validator"
	"github.com/x-xyz/nftpersona/domain"
	"github.com/x-xyz/nftpersona/domain/chain"
	mmiddleware "github.com/x-xyz/nftpersona/middleware"
	"github.com/x-xyz/nftpersona/service/anthropic"
	"github.com/x-xyz/nftpersona/service/cache/provider/primitive"
	"github.com/x-xyz/nftpersona/service/gemini"
	"github.com/x-xyz/nftpersona/service/simplehash"
	chat_delivery "github.com/x-xyz/nftpersona/stores/chat/delivery/http"
	chat_usecase "github.com/x-xyz/nftpersona/stores/chat/usecase"
	hc_delivery "github.com/x-xyz/nftpersona/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/nftpersona/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/nftpersona/stores/healthcheck/usecase"
	nft_delivery "github.com/x-xyz/nftpersona/stores/nft/delivery/http"
	nft_repository "github.com/x-xyz/nftpersona/stores/nft/repository"
	nft_usecase "github.com/x-xyz/nftpersona/stores/nft/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/nftpersona/app/api/docs"
)

func setDefaults() {
	viper.SetDefault("server.address", ":8000")
	viper.SetDefault("app_name", "nftpersona-api")
	viper.SetDefault("simplehash.baseUrl", simplehash.DefaultEndpoint)
	viper.SetDefault("simplehash.timeout", 10*time.Second)
	viper.SetDefault("cache.sizeMB", 256)
	viper.SetDefault("cache.ttl", 10*time.Minute)
	viper.SetDefault("llm.provider", "anthropic")
	viper.SetDefault("llm.timeout", 30*time.Second)
	viper.SetDefault("anthropic.baseUrl", anthropic.DefaultEndpoint)
	viper.SetDefault("anthropic.model", anthropic.DefaultModel)
	viper.SetDefault("anthropic.maxTokens", 150)
	viper.SetDefault("anthropic.temperature", 0.7)
	viper.SetDefault("gemini.model", gemini.DefaultModel)
	viper.SetDefault("persona.defaultChain", chain.Ethereum.String())
}

func loadConfig() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	pflag.Parse()

	// .env is optional, real environment variables win
	_ = godotenv.Load()

	setDefaults()
	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
	if err := env.BindSecrets(viper.GetViper()); err != nil {
		panic(err)
	}

	log.SetDebug(viper.GetBool(`debug`))
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func mustString(key string) string {
	val, err := env.RequiredString(viper.GetViper(), key)
	if err != nil {
		log.Log().WithField("err", err).Panic("missing required setting")
	}
	return val
}

func newGenerator(context ctx.Ctx) domain.Generator {
	provider := strings.ToLower(viper.GetString("llm.provider"))
	timeout := viper.GetDuration("llm.timeout")

	switch provider {
	case "gemini":
		g, err := gemini.NewClient(context, &gemini.ClientCfg{
			HttpClient: &http.Client{},
			Timeout:    timeout,
			Apikey:     mustString("gemini.apikey"),
			Model:      viper.GetString("gemini.model"),
		})
		if err != nil {
			log.Log().WithField("err", err).Panic("gemini.NewClient failed")
		}
		return g
	case "anthropic":
		return anthropic.NewClient(&anthropic.ClientCfg{
			HttpClient: &http.Client{},
			Timeout:    timeout,
			Apikey:     mustString("anthropic.apikey"),
			Model:      viper.GetString("anthropic.model"),
			Endpoint:   viper.GetString("anthropic.baseUrl"),
		})
	default:
		log.Log().WithField("provider", provider).Panic("unknown llm.provider")
		return nil
	}
}

//	@title			NFT Persona API
//	@version		1.0
//	@description	NFT metadata with generated personalities and in character chat.

// main
func main() {
	loadConfig()
	defer log.Sync()

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.NoStore)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.Validator = bValidator.NewCustomValidator(bValidator.NewJsonValidate())

	context := ctx.Background()

	// init memo cache
	context.Info("init memo cache")
	memoCache := primitive.NewPrimitive("memo", viper.GetInt("cache.sizeMB"))

	simplehashClient := simplehash.NewClient(&simplehash.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("simplehash.timeout"),
		Apikey:     mustString("simplehash.apikey"),
		Endpoint:   viper.GetString("simplehash.baseUrl"),
	})

	generator := newGenerator(context)
	context.WithField("provider", generator.Name()).Info("init generator")

	maxTokens := viper.GetInt32("anthropic.maxTokens")
	temperature := float32(viper.GetFloat64("anthropic.temperature"))

	// repository
	nftRepo := nft_repository.New(&nft_repository.RepoCfg{
		Simplehash: simplehashClient,
		Cache:      memoCache,
		Ttl:        viper.GetDuration("cache.ttl"),
	})
	hcRepo := hc_repo.New(memoCache)

	// usecase
	nftUsecase := nft_usecase.New(&nft_usecase.NftUseCaseCfg{
		Repo:        nftRepo,
		Generator:   generator,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	chatUsecase := chat_usecase.New(&chat_usecase.ChatUseCaseCfg{
		Repo:            nftRepo,
		Generator:       generator,
		MaxTokens:       maxTokens,
		Temperature:     temperature,
		DefaultChain:    chain.Chain(viper.GetString("persona.defaultChain")),
		DefaultContract: viper.GetString("persona.defaultContract"),
	})
	hcUsecase := hc_usecase.New(hcRepo)

	// delivery
	hc_delivery.New(e, hcUsecase)
	nft_delivery.New(e, nftUsecase)
	chat_delivery.New(e, chatUsecase)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if dir := viper.GetString("server.staticDir"); dir != "" {
		context.WithField("dir", dir).Info("serving static files")
		e.Static("/", dir)
	}

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
