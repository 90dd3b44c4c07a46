package usage

import (
	"fmt"
	"os"
	"strings"

	"github.com/dtnitsch/contentgen/internal/common"
	"github.com/dtnitsch/contentgen/internal/termview"
	"github.com/urfave/cli/v2"
)

func UsageAction(c *cli.Context) error {
	rt, err := common.Setup(c, nil)
	if err != nil {
		return common.Exit(err)
	}
	defer rt.Close()

	format := strings.ToLower(c.String("format"))
	if format == "text" {
		rt.Generator.Usage()
		return nil
	}

	data, err := common.MarshalOutput(rt.Limiter.Status(), format)
	if err != nil {
		return common.Exit(err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// PremiumAction shows the premium offer.
func PremiumAction(c *cli.Context) error {
	rt, err := common.Setup(c, nil)
	if err != nil {
		return common.Exit(err)
	}
	defer rt.Close()

	rt.Generator.ShowPremiumUpgrade()
	return nil
}

func PremiumEnableAction(c *cli.Context) error {
	return setPremium(c, true)
}

func PremiumDisableAction(c *cli.Context) error {
	return setPremium(c, false)
}

func setPremium(c *cli.Context, premium bool) error {
	rt, err := common.Setup(c, nil)
	if err != nil {
		return common.Exit(err)
	}
	defer rt.Close()

	if err := rt.Limiter.SetPremium(premium); err != nil {
		return common.Exit(err)
	}
	rt.Logger.Info("premium flag updated", "premium", premium)

	if premium {
		rt.View.Notice("Premium ativado: gerações ilimitadas.")
	} else {
		rt.View.Notice("Premium desativado.")
	}
	rt.Generator.Usage()
	return nil
}

func PremiumStatusAction(c *cli.Context) error {
	rt, err := common.Setup(c, nil)
	if err != nil {
		return common.Exit(err)
	}
	defer rt.Close()

	status := rt.Limiter.Status()
	if status.Premium {
		fmt.Println("premium")
	} else {
		fmt.Println("free")
	}
	rt.View.Notice(termview.UsageBadge(status))
	return nil
}
