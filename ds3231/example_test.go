// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231_test

import (
	"fmt"
	"log"
	"time"

	"github.com/GermanBionicSystems/rtc/ds3231"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	d, err := ds3231.NewI2C(b, &ds3231.Opts{Location: time.Local})
	if err != nil {
		log.Fatal(err)
	}

	if stopped, err := d.OscillatorStopped(); err != nil {
		log.Fatal(err)
	} else if stopped {
		// The clock lost its time, set it from the host.
		if res, err := d.SetDateTimeNow(); err != nil || !res.OK() {
			log.Fatalf("failed to set the time: %v %s", err, res)
		}
	}

	now, err := d.DateTime()
	if err != nil {
		log.Fatal(err)
	}
	day, err := d.WeekDay()
	if err != nil {
		log.Fatal(err)
	}
	temp, err := d.Temperature()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s %s %s\n", day, now.Format(time.DateTime), temp)
}

func ExampleOpen() {
	// Open the bus named "I2C1" and bind the clock to it.
	d, err := ds3231.Open("I2C1", nil)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Close()

	res, err := d.SetDateTimeString("15.03.2024 13:45:30")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res)
}
