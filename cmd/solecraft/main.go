package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/solecraft/client-go/api"
	"github.com/solecraft/client-go/credentials"
	"github.com/solecraft/client-go/gateway"
	"github.com/solecraft/client-go/internal/config"
	"github.com/solecraft/client-go/session"
	"github.com/solecraft/client-go/token"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app wires the session gateway stack once per invocation; every command
// shares the same store, pipeline and facade.
type app struct {
	cfg     config.Config
	store   *credentials.Store
	manager *session.Manager
	client  *api.Client
	nav     *cliNavigator
}

func newApp(verbose bool) (*app, error) {
	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	fileCfg, err := config.LoadFile(config.DefaultConfigFile())
	if err != nil {
		return nil, err
	}
	cfg := config.WithFile(config.New(), fileCfg)

	store := credentials.NewStore(
		credentials.NewFileStorage(cfg.GetCredentialsFile()),
		credentials.WithLogger(logger),
	)
	store.Cleanup()

	nav := newCLINavigator(os.Stderr)

	silent := gateway.DefaultSilentEndpoints()
	for _, fragment := range cfg.GetSilentEndpoints() {
		silent = append(silent, gateway.SilentEndpoint{PathFragment: fragment})
	}
	metrics := gateway.NewMetrics(prometheus.DefaultRegisterer)
	guardian, err := gateway.NewGuardian(store, nav,
		gateway.WithSilentEndpoints(silent),
		gateway.WithAuthPages(cfg.GetAuthPages()),
		gateway.WithGuardianMetrics(metrics),
		gateway.WithGuardianLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	gw := gateway.NewClient(cfg.GetBaseURL(),
		gateway.WithHTTPClient(&http.Client{Timeout: cfg.GetRequestTimeout()}),
		gateway.WithRequestHooks(gateway.BearerAuth(store), gateway.RequestID()),
		gateway.WithResponseHooks(metrics.Hook(), guardian.Hook()),
		gateway.WithClientLogger(logger),
	)
	client := api.New(gw)

	manager, err := session.NewManager(store, token.NewInspector(), nav,
		session.WithVerifier(client),
		session.WithLoginPath(cfg.GetLoginPath()),
		session.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, store: store, manager: manager, client: client, nav: nav}, nil
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "solecraft",
		Short: "SoleCraft command-line client",
		Long:  "Browse services and products, find cobblers, manage your cart and session from the terminal.",
		Run: func(cmd *cobra.Command, _ []string) {
			displayAppname("SoleCraft")
			_ = cmd.Help()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newLoginCmd(&verbose),
		newRegisterCmd(&verbose),
		newLogoutCmd(&verbose),
		newWhoamiCmd(&verbose),
		newVerifyCmd(&verbose),
		newForgotPasswordCmd(&verbose),
		newServicesCmd(&verbose),
		newProductsCmd(&verbose),
		newStatsCmd(&verbose),
		newCartCmd(&verbose),
		newCobblersCmd(&verbose),
	)
	return root
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}

// cliNavigator is the terminal's stand-in for browser navigation: being
// "sent to the login page" becomes an instruction on stderr.
type cliNavigator struct {
	out     io.Writer
	current string
}

func newCLINavigator(out io.Writer) *cliNavigator {
	return &cliNavigator{out: out}
}

func (n *cliNavigator) CurrentPath() string {
	return n.current
}

// SetCurrentPath marks which "page" the running command corresponds to, so
// the guardian's auth-page suppression works for login/register commands.
func (n *cliNavigator) SetCurrentPath(path string) {
	n.current = path
}

func (n *cliNavigator) Navigate(destination string) {
	fmt.Fprintf(n.out, "Your session has expired. Run `solecraft login` to sign in again. (%s)\n", destination)
}
