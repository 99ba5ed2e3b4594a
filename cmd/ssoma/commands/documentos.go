package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"ssoma/internal/api"
	"ssoma/internal/domain"
)

func documentosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "documentos",
		Aliases: []string{"docs"},
		Short:   "Manage company documents and their expiry",
	}
	cmd.AddCommand(
		documentosListCmd(),
		documentosVencidosCmd(),
		documentosPorVencerCmd(),
		documentosGetCmd(),
		documentosCreateCmd(),
		documentosUpdateCmd(),
		documentosDeleteCmd(),
	)
	return cmd
}

func documentosListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <empresa-id>",
		Short: "List the documents of a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			docs, err := appCtx.API.ListDocumentos(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printDocumentos(cmd.OutOrStdout(), docs)
		},
	}
}

func documentosVencidosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vencidos",
		Short: "List expired documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := appCtx.API.DocumentosVencidos(cmd.Context())
			if err != nil {
				return err
			}
			return printDocumentos(cmd.OutOrStdout(), docs)
		},
	}
}

func documentosPorVencerCmd() *cobra.Command {
	var dias int
	cmd := &cobra.Command{
		Use:   "por-vencer",
		Short: "List documents expiring soon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := appCtx.API.DocumentosPorVencer(cmd.Context(), dias)
			if err != nil {
				return err
			}
			return printDocumentos(cmd.OutOrStdout(), docs)
		},
	}
	cmd.Flags().IntVar(&dias, "dias", api.DefaultDiasAnticipacion, "look-ahead window in days")
	return cmd
}

func documentosGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d, err := appCtx.API.GetDocumento(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printDocumento(cmd.OutOrStdout(), d)
		},
	}
}

func documentosCreateCmd() *cobra.Command {
	var empresa, nombre, vence, url string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Attach a document to a company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(empresa)
			if err != nil {
				return err
			}
			d := domain.DocumentoEmpresa{EmpresaID: id, NombreDocumento: nombre, DocumentoURL: url}
			if vence != "" {
				date, err := domain.ParseDate(vence)
				if err != nil {
					return err
				}
				d.FechaVencimiento = &date
			}
			created, err := appCtx.API.CreateDocumento(cmd.Context(), d)
			if err != nil {
				return err
			}
			appCtx.Dialog.Show("Documento creado exitosamente: " + created.ID().String())
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&empresa, "empresa", "", "company id")
	fl.StringVar(&nombre, "nombre", "", "document name")
	fl.StringVar(&vence, "vence", "", "expiry date, YYYY-MM-DD")
	fl.StringVar(&url, "url", "", "document URL")
	_ = cmd.MarkFlagRequired("empresa")
	_ = cmd.MarkFlagRequired("nombre")
	return cmd
}

func documentosUpdateCmd() *cobra.Command {
	var nombre, vence, url string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d, err := appCtx.API.GetDocumento(cmd.Context(), id)
			if err != nil {
				return err
			}
			fl := cmd.Flags()
			if fl.Changed("nombre") {
				d.NombreDocumento = nombre
			}
			if fl.Changed("url") {
				d.DocumentoURL = url
			}
			// An empty --vence clears the expiry date.
			if fl.Changed("vence") {
				d.FechaVencimiento = nil
				if vence != "" {
					date, err := domain.ParseDate(vence)
					if err != nil {
						return err
					}
					d.FechaVencimiento = &date
				}
			}
			if _, err := appCtx.API.UpdateDocumento(cmd.Context(), id, d); err != nil {
				return err
			}
			appCtx.Dialog.Show("Documento actualizado exitosamente")
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&nombre, "nombre", "", "document name")
	fl.StringVar(&vence, "vence", "", "expiry date, YYYY-MM-DD; empty clears it")
	fl.StringVar(&url, "url", "", "document URL")
	return cmd
}

func documentosDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !appCtx.Dialog.Confirm("¿Está seguro de eliminar este documento?") {
				fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
				return nil
			}
			if err := appCtx.API.DeleteDocumento(cmd.Context(), id); err != nil {
				return err
			}
			appCtx.Dialog.Show("Documento eliminado exitosamente")
			return nil
		},
	}
}

func printDocumento(w io.Writer, d domain.DocumentoEmpresa) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", d.ID())
	fmt.Fprintf(tw, "Empresa:\t%s\n", d.EmpresaID)
	fmt.Fprintf(tw, "Documento:\t%s\n", d.NombreDocumento)
	fmt.Fprintf(tw, "Vence:\t%s\n", appCtx.Dates.Format(d.FechaVencimiento))
	fmt.Fprintf(tw, "URL:\t%s\n", orDash(d.DocumentoURL))
	return tw.Flush()
}

func printDocumentos(w io.Writer, docs []domain.DocumentoEmpresa) error {
	if len(docs) == 0 {
		fmt.Fprintln(w, "no documents")
		return nil
	}
	now := time.Now()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDOCUMENTO\tVENCE\tESTADO")
	for _, d := range docs {
		estado := "vigente"
		switch {
		case d.FechaVencimiento == nil:
			estado = "-"
		case d.Expired(now):
			estado = "vencido"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.ID(), d.NombreDocumento, appCtx.Dates.Format(d.FechaVencimiento), estado)
	}
	return tw.Flush()
}
