package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"subdec/internal/video"
)

var extractCmd = &cobra.Command{
	Use:   "extract [video_file]",
	Short: "Extract a subtitle stream from a media container",
	Long: `Extract a text subtitle stream from a media container and save it as a
separate subtitle file. The output format follows the output path's
extension (.srt or .vtt).

Examples:
  subdec extract movie.mkv
  subdec extract movie.mkv --list
  subdec extract movie.mkv -s 1 -o movie.en.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		IntP("stream", "s", 0, "Subtitle stream index within the container (0 = first)")
	extractCmd.Flags().
		BoolP("list", "l", false, "List the container's subtitle streams and exit")
}

func runExtract(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	streamIndex, _ := cmd.Flags().GetInt("stream")
	list, _ := cmd.Flags().GetBool("list")
	outputPath, _ := cmd.Flags().GetString("output")

	ctx := context.Background()

	if list {
		streams, err := video.ListSubtitleStreams(ctx, videoPath)
		if err != nil {
			return fmt.Errorf("probing failed: %w", err)
		}
		if len(streams) == 0 {
			fmt.Println("No subtitle streams found.")
			return nil
		}

		rows := make([][]string, 0, len(streams))
		for _, s := range streams {
			rows = append(rows, []string{
				strconv.Itoa(s.Index),
				s.Codec,
				s.Language,
				s.Title,
			})
		}
		fmt.Println(renderTable(
			[]string{"Stream", "Codec", "Language", "Title"},
			rows,
		))
		return nil
	}

	if outputPath == "" {
		ext := filepath.Ext(videoPath)
		outputPath = strings.TrimSuffix(videoPath, ext) + ".srt"
	}

	logger.Infow("Extracting subtitle stream",
		"video", videoPath,
		"output", outputPath,
		"stream", streamIndex,
	)

	opts := video.ExtractSubtitleOptions{
		StreamIndex: streamIndex,
	}

	if err := video.ExtractSubtitle(
		ctx,
		videoPath,
		outputPath,
		opts,
	); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitle extracted successfully: %s\n", absOutput)

	return nil
}
