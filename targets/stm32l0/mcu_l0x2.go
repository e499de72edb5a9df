//go:build tinygo && stm32l0x2 && !stm32l072 && !stm32l082

package main

const mcuName = "stm32l0x2"
