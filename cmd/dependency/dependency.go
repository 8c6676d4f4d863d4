/*
 *     Copyright 2024 The Mltemplate Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dependency

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/mitchellh/mapstructure"
	"github.com/phayes/freeport"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"

	"github.com/mltemplate/mltemplate/cmd/dependency/base"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/mlpath"
)

// InitCommandAndConfig initializes flags binding and common sub cmds.
// config is a pointer to configuration struct.
func InitCommandAndConfig(cmd *cobra.Command, useConfigFile bool, config any) {
	rootName := cmd.Root().Name()
	cobra.OnInitialize(func() { initConfig(useConfigFile, rootName, config) })

	if !cmd.HasParent() {
		// Add flags
		flagSet := cmd.PersistentFlags()
		flagSet.Bool("console", false, "whether logger output records to the stdout")
		flagSet.Bool("verbose", false, "whether logger use debug level")
		flagSet.Int("pprof-port", -1, "listen port for pprof and statsview, 0 represents random port")
		flagSet.String("jaeger", "", "jaeger endpoint url, like: http://localhost:14268/api/traces")
		flagSet.String("service-name", fmt.Sprintf("%s-%s", "mltemplate", rootName), "name of the service for tracer")

		if useConfigFile {
			flagSet.String("config", "", fmt.Sprintf("the path of configuration file with yaml extension name, default is %s, it can also be set by env var: %s",
				filepath.Join(mlpath.DefaultWorkHome, rootName+".yaml"), strings.ToUpper(rootName+"_config")))
		}

		// Bind common flags
		bindings := map[string]string{
			"console":                "console",
			"verbose":                "verbose",
			"pprof-port":             "pprof-port",
			"telemetry.jaeger":       "jaeger",
			"telemetry.service-name": "service-name",
		}
		if useConfigFile {
			bindings["config"] = "config"
		}

		for key, flag := range bindings {
			if err := viper.BindPFlag(key, flagSet.Lookup(flag)); err != nil {
				panic(errors.Wrap(err, "bind common flags to viper"))
			}
		}

		// Config for binding env
		viper.SetEnvPrefix(rootName)
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
		viper.AutomaticEnv()
		_ = viper.BindEnv("config")

		// Add common cmds only on root cmd
		cmd.AddCommand(VersionCmd)
		cmd.AddCommand(newConfigCommand(config))
	}
}

// InitMonitor starts pprof, statsview and tracing, returns a function to stop them.
func InitMonitor(pprofPort int, otelOption base.TelemetryOption) func() {
	var (
		mu      sync.Mutex
		closers []func()
	)
	addCloser := func(f func()) {
		mu.Lock()
		defer mu.Unlock()
		closers = append(closers, f)
	}

	go func() {
		if pprofPort < 0 {
			return
		}

		if pprofPort == 0 {
			pprofPort, _ = freeport.GetFreePort()
		}

		debugAddr := fmt.Sprintf("%s:%d", "0.0.0.0", pprofPort)
		viewer.SetConfiguration(viewer.WithAddr(debugAddr))

		logger.With("pprof", fmt.Sprintf("http://%s/debug/pprof", debugAddr),
			"statsview", fmt.Sprintf("http://%s/debug/statsview", debugAddr)).
			Infof("enable pprof at %s", debugAddr)

		vm := statsview.New()
		addCloser(vm.Stop)
		if err := vm.Start(); err != nil {
			logger.Warnf("serve pprof error: %v", err)
		}
	}()

	if otelOption.Jaeger != "" {
		if ff, err := initJaegerTracer(otelOption); err != nil {
			logger.Warnf("init jaeger tracer error: %v", err)
		} else {
			addCloser(ff)
		}
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()

		logger.Infof("do %d monitor finalizer", len(closers))
		for _, f := range closers {
			f()
		}
	}
}

// SetupQuitSignalHandler calls handler once on SIGINT or SIGTERM.
func SetupQuitSignalHandler(handler func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		var done bool
		for sig := range signals {
			logger.Infof("receive %s signal", sig)
			if !done {
				done = true
				handler()
				logger.Infof("handle signal %s finish", sig)
			}
		}
	}()
}

func initConfig(useConfigFile bool, name string, config any) {
	// Use config file and read once.
	if useConfigFile {
		cfgFile := viper.GetString("config")
		if cfgFile != "" {
			// Use config file from the flag.
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath(mlpath.DefaultWorkHome)
			viper.SetConfigName(name)
			viper.SetConfigType("yaml")
		}

		// If a config file is found, read it in.
		if err := viper.ReadInConfig(); err != nil {
			var ignoreErr viper.ConfigFileNotFoundError
			if !errors.As(err, &ignoreErr) {
				panic(errors.Wrap(err, "viper read config"))
			}
		}
	}

	if err := viper.Unmarshal(config, initDecoderConfig); err != nil {
		panic(errors.Wrap(err, "unmarshal config to struct"))
	}
}

func initDecoderConfig(dc *mapstructure.DecoderConfig) {
	dc.TagName = "yaml"
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

func initJaegerTracer(otelOption base.TelemetryOption) (func(), error) {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(otelOption.Jaeger)))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(otelOption.ServiceName),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := tp.Shutdown(ctx); err != nil {
			logger.Errorf("shutdown tracer provider error: %v", err)
		}
	}, nil
}
