// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/drills/carpark"
	"github.com/katalvlaran/drills/cart"
	"github.com/katalvlaran/drills/fib"
	"github.com/katalvlaran/drills/notes"
	"github.com/katalvlaran/drills/shake"
	"github.com/katalvlaran/drills/shapes"
)

func newHelloCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hello [name]",
		Short: "Print the hello-world greeting with fib(10)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Greeting.Name
			if len(args) == 1 {
				name = args[0]
			}
			fmt.Fprintln(cmd.OutOrStdout(), fib.Greeting(name))

			return nil
		},
	}
}

func newShapesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "Print the areas of the demo shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, s := range []shapes.Shape{
				shapes.Rectangle{Height: 10, Width: 10},
				shapes.Circle{Radius: 10},
				shapes.UnknownPolygon{},
			} {
				fmt.Fprintf(out, "%s area %.2f\n", s, s.Area())
			}

			return nil
		},
	}
}

func newBedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bed [size]",
		Short: "Print a bed's dimensions and area (single, queen, double, king, superking)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bed := shapes.SuperKing
			if len(args) == 1 {
				var err error
				if bed, err = shapes.ParseBed(args[0]); err != nil {
					return err
				}
			}
			d, err := bed.Size()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %dcm x %dcm, area %dcm²\n", bed, d.Width, d.Length, d.Area())

			return nil
		},
	}
}

func newShakeCmd(a *app) *cobra.Command {
	var sip int
	cmd := &cobra.Command{
		Use:   "shake",
		Short: "Drink a chocolate shake one sip at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sip <= 0 {
				return fmt.Errorf("sip must be positive, got %d", sip)
			}
			s := shake.ChocolateShake()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s shake, %dml, %dp\n", s.Flavour, s.Volume, s.Price())
			glugs := s.Drink(sip)
			fmt.Fprintln(out, strings.TrimSpace(strings.Repeat("glug! ", glugs)))

			return nil
		},
	}
	cmd.Flags().IntVar(&sip, "sip", 100, "sip size in ml")

	return cmd
}

func newCarParkCmd(a *app) *cobra.Command {
	var maxAge int
	cmd := &cobra.Command{
		Use:   "carpark",
		Short: "Filter old cars out of the demo car park",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lot := &carpark.CarPark{}
			lot.Park(carpark.Car{NumberPlate: "RG54 1PQ", Age: 0, Colour: carpark.Black})
			lot.Park(carpark.Car{NumberPlate: "RG54 3PQ", Age: 0, Colour: carpark.Blue})
			lot.Park(carpark.Car{NumberPlate: "RG54 2PQ", Age: 0, Colour: carpark.Green})
			lot.Park(carpark.Car{NumberPlate: "RG54 4PQ", Age: 10, Colour: carpark.Silver})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Car count: %d\n", lot.Count())
			lot.FilterOld(maxAge)
			fmt.Fprintf(out, "Car count: %d\n", lot.Count())

			return nil
		},
	}
	cmd.Flags().IntVar(&maxAge, "max-age", 5, "keep cars younger than this many years")

	return cmd
}

func newNoteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "note text...",
		Short: "Append text to the notes file, creating it if missing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Notes.Path
			created, err := notes.Append(path, strings.Join(args, " ")+"\n")
			if err != nil {
				return err
			}
			if created {
				a.logger.Info("notes file did not exist, created it", zap.String("path", path))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "appended to %s\n", path)

			return nil
		},
	}
}

func newCheckoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Run the Alice and Bob shopping-cart checkouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			log := cart.WithLogger(a.logger)

			alice := &cart.Customer{Name: "Alice", Email: "alice.dj@gmail.com", Balance: 1000}
			var aliceCart cart.Cart
			aliceCart.Add(
				cart.Product{Name: "Laptop", Price: 600, Category: cart.Electronics},
				cart.Product{Name: "T-shirt", Price: 20, Category: cart.Clothing},
				cart.Product{Name: "Milk", Price: 2, Category: cart.Groceries},
				cart.Product{Name: "Orange Juice", Price: 3, Category: cart.Groceries},
			)
			fmt.Fprintln(out, aliceCart.String())
			order, err := cart.Checkout(alice, &aliceCart, nil, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s paid £%.2f, balance £%.2f\n", alice.Name, order.Total, alice.Balance)

			apple := cart.Product{Name: "Apple", Price: 1, Category: cart.Groceries}
			orange := cart.Product{Name: "Orange", Price: 2, Category: cart.Groceries}
			bob := &cart.Customer{Name: "Bob", Email: "bob.builder@gmail.com", Balance: 1000}
			var bobCart cart.Cart
			bobCart.Add(apple, apple, apple, apple, orange)
			fmt.Fprintln(out, bobCart.String())
			discounts := []cart.Discount{cart.BuyOneGetOneFree(apple), cart.TenPercent}
			order, err = cart.Checkout(bob, &bobCart, discounts, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s paid £%.2f, balance £%.2f\n", bob.Name, order.Total, bob.Balance)

			return nil
		},
	}
}
