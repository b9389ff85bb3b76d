package cmd

import (
	"github.com/hargabyte/lx/internal/output"
	"github.com/spf13/cobra"
)

// clustersCmd represents the clusters command
var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Group topics into similarity clusters",
	Long: `Group the graph's topics into clusters of similar concepts.

Each topic is described by TF-IDF features of its name and description
plus structural features (degree, subtopic count, prerequisite count),
then clustered with DBSCAN. Every topic lands in exactly one cluster;
a topic similar to nothing else forms a cluster of one.

Clusters back the path finder's last-resort strategy: when a target has
no structural connections, its cluster mates are suggested instead.

Tuning lives in .lx/config.yaml under 'clustering' (eps, min_samples,
max_features).

Examples:
  lx clusters                    # All clusters
  lx clusters --density=sparse   # IDs only
  lx clusters --format=json      # JSON output`,
	Args: cobra.NoArgs,
	RunE: runClusters,
}

func init() {
	rootCmd.AddCommand(clustersCmd)
}

func runClusters(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	partition := ws.clusters()

	density, err := selectedDensity()
	if err != nil {
		return err
	}

	out := output.ClustersOutput{Count: partition.Size()}
	for _, label := range partition.Labels() {
		members := partition.Members(label)
		out.Clusters = append(out.Clusters, output.ClusterOutput{
			Label:  label,
			Topics: output.Refs(ws.graph, members, density),
		})
	}

	return printResult(out)
}
