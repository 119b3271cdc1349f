package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"ising/lattice"
)

func main() {
	app := &cli.App{
		Name:  "ising-plots",
		Usage: "plot magnetization and susceptibility curves from Ising simulation results",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Value: "ising.txt",
				Usage: "whitespace-delimited results table with l, t, m and s columns",
			},
			&cli.StringFlag{
				Name:  "magnetization-out",
				Value: "magnetization.png",
				Usage: "output path for the magnetization chart",
			},
			&cli.StringFlag{
				Name:  "susceptibility-out",
				Value: "susceptibility.png",
				Usage: "output path for the susceptibility chart",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	recs, err := lattice.Load(c.String("input"))
	if err != nil {
		return err
	}
	groups := recs.GroupBySize(lattice.Sizes)

	if err := groups.SaveMagnetizationChart(c.String("magnetization-out")); err != nil {
		return err
	}
	return groups.SaveSusceptibilityChart(c.String("susceptibility-out"))
}
