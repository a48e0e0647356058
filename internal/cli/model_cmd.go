package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/haskel/carprice/internal/regression"
	"github.com/haskel/carprice/internal/storage"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Show or delete the saved model",
	Long: `Show where the trained model is stored, when it was written and its
coefficients. With --delete the model file is removed.`,
	Args: cobra.NoArgs,
	RunE: runModel,
}

var (
	modelPath   string
	modelDelete bool
)

type modelOutput struct {
	storage.ModelInfo
	Model   *regression.Model `json:"model,omitempty"`
	Deleted bool              `json:"deleted,omitempty"`
}

func init() {
	modelCmd.Flags().StringVar(&modelPath, "model", "", "model file (default: storage.data_dir/storage.model_file)")
	modelCmd.Flags().BoolVar(&modelDelete, "delete", false, "delete the saved model")
	rootCmd.AddCommand(modelCmd)
}

func runModel(cmd *cobra.Command, args []string) error {
	store := storage.NewModelStore(appConfig.Storage.DataDir, appConfig.Storage.ModelFile, log)
	if modelPath != "" {
		store = storage.OpenModelStore(modelPath, log)
	}

	out := modelOutput{ModelInfo: store.Info()}

	if modelDelete {
		if store.Exists() {
			if err := store.Delete(); err != nil {
				return err
			}
			out.Deleted = true
			log.Info("model deleted", "path", store.Path())
		}
		return printModel(cmd.OutOrStdout(), out)
	}

	if out.Exists {
		var m regression.Model
		if err := store.Load(&m); err != nil {
			return err
		}
		out.Model = &m
	}
	return printModel(cmd.OutOrStdout(), out)
}

func printModel(w io.Writer, out modelOutput) error {
	if jsonOut {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	switch {
	case out.Deleted:
		fmt.Fprintf(w, "Deleted model: %s\n", out.Path)
	case !out.Exists:
		fmt.Fprintf(w, "No model at %s\n", out.Path)
	default:
		fmt.Fprintf(w, "Model:   %s\n", out.Path)
		fmt.Fprintf(w, "Size:    %s\n", humanize.IBytes(uint64(out.Size)))
		fmt.Fprintf(w, "Updated: %s\n", humanize.Time(out.UpdatedAt))
		if out.Model != nil {
			fmt.Fprintf(w, "%s", out.Model.Text())
		}
	}
	return nil
}
