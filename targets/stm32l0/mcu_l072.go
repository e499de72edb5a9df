//go:build tinygo && stm32l072

package main

const mcuName = "stm32l072"
