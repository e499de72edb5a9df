// Command pwmctl drives the PWM outputs of an STM32L0 board over serial.
//
//	pwmctl -device /dev/ttyUSB0 list
//	pwmctl get 0
//	pwmctl set 0 16000
//	pwmctl fraction 0 250
//	pwmctl enable 0
//	pwmctl disable 0
//	pwmctl stop
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"l0pwm/host/mcu"
	"l0pwm/host/serial"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	timeout = flag.Duration("timeout", 500*time.Millisecond, "Acknowledgement timeout per attempt")
	verbose = flag.Bool("verbose", false, "Log every frame")
)

var errUsage = errors.New("usage: pwmctl [flags] list|get|set|fraction|enable|disable|stop [oid] [value]")

func main() {
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(log, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			flag.PrintDefaults()
			os.Exit(2)
		}
		log.WithError(err).Fatal("pwmctl failed")
	}
}

func run(log *logrus.Logger, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	log.WithFields(logrus.Fields{"device": cfg.Device, "baud": cfg.Baud}).Debug("connecting")

	c, err := mcu.Connect(cfg, log)
	if err != nil {
		return err
	}
	defer c.Close()
	c.Timeout = *timeout

	return execute(c, args)
}

func execute(c *mcu.Client, args []string) error {
	switch args[0] {
	case "list":
		outs, err := c.ListOutputs()
		if err != nil {
			return err
		}
		for _, o := range outs {
			fmt.Printf("%d\t%s\n", o.OID, o.Name)
		}
		return nil
	case "stop":
		return c.EmergencyStop()
	}

	if len(args) < 2 {
		return errUsage
	}
	oid, err := parseUint(args[1], 8)
	if err != nil {
		return err
	}

	switch args[0] {
	case "get":
		st, err := c.GetOutput(uint8(oid))
		if err != nil {
			return err
		}
		fmt.Printf("oid=%d enabled=%t duty=%d max=%d (%.1f%%)\n",
			st.OID, st.Enabled, st.Duty, st.Max, st.Percent())
		return nil
	case "enable":
		return c.Enable(uint8(oid))
	case "disable":
		return c.Disable(uint8(oid))
	case "set", "fraction":
		if len(args) < 3 {
			return errUsage
		}
		v, err := parseUint(args[2], 16)
		if err != nil {
			return err
		}
		if args[0] == "set" {
			return c.SetDuty(uint8(oid), uint16(v))
		}
		return c.SetFraction(uint8(oid), uint16(v))
	}
	return errUsage
}

func parseUint(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, err)
	}
	return v, nil
}
