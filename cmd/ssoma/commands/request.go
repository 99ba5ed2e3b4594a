package commands

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"ssoma/internal/api"
	"ssoma/internal/jsoncodec"
)

// request <url>: send one request and pretty-print the JSON body.
func requestCmd() *cobra.Command {
	var (
		method  string
		headers []string
		data    string
	)
	cmd := &cobra.Command{
		Use:   "request <url>",
		Short: "Send a request and print the JSON response",
		Long: "Send a request and print the JSON response.\n\n" +
			"A URL starting with / is resolved against the API base URL.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			if strings.HasPrefix(url, "/") {
				url = appCtx.API.Base + url
			}
			opts := api.Options{Method: method}
			if len(headers) > 0 {
				opts.Headers = make(map[string]string, len(headers))
				for _, h := range headers {
					k, v, ok := strings.Cut(h, ":")
					if !ok {
						return fmt.Errorf("header %q: want \"Name: value\"", h)
					}
					opts.Headers[http.CanonicalHeaderKey(strings.TrimSpace(k))] = strings.TrimSpace(v)
				}
			}
			if data != "" {
				opts.Body = data
				if _, set := opts.Headers["Content-Type"]; !set && jsoncodec.Valid([]byte(data)) {
					if opts.Headers == nil {
						opts.Headers = map[string]string{}
					}
					opts.Headers["Content-Type"] = "application/json"
				}
			}

			body, err := appCtx.API.Do(cmd.Context(), url, opts)
			if err != nil {
				return err
			}
			out, err := jsoncodec.MarshalIndent(body, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&method, "method", "X", "GET", "HTTP method")
	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, "request header \"Name: value\" (repeatable)")
	cmd.Flags().StringVarP(&data, "data", "d", "", "request body")
	return cmd
}
