//go:build tinygo && stm32l082 && !stm32l072

package main

const mcuName = "stm32l082"
